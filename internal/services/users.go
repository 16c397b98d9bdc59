package services

import (
	"errors"

	"template-manager/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	GetUserByID(db *gorm.DB, id uuid.UUID) (*models.User, error)
	GetTeam(db *gorm.DB, excludeID uuid.UUID) ([]models.User, error)
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

func (s *UserServiceImpl) GetUserByID(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetTeam lists every registered user except the caller, for picking a task
// assignee.
func (s *UserServiceImpl) GetTeam(db *gorm.DB, excludeID uuid.UUID) ([]models.User, error) {
	users := []models.User{}
	if err := db.Where("id <> ?", excludeID).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
