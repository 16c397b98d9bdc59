package services

import (
	"errors"
	"time"

	"template-manager/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TemplateInput struct {
	TemplateName string `json:"template_name" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Body         string `json:"body" binding:"required"`
}

type TemplateService interface {
	CreateTemplate(db *gorm.DB, ownerID uuid.UUID, input TemplateInput) (*models.Template, error)
	GetTemplates(db *gorm.DB, ownerID uuid.UUID) ([]models.Template, error)
	GetTemplateByID(db *gorm.DB, ownerID, id uuid.UUID) (*models.Template, error)
	UpdateTemplate(db *gorm.DB, ownerID, id uuid.UUID, input TemplateInput) (*models.Template, error)
	DeleteTemplate(db *gorm.DB, ownerID, id uuid.UUID) error
}

type TemplateServiceImpl struct{}

func NewTemplateService() *TemplateServiceImpl {
	return &TemplateServiceImpl{}
}

func (s *TemplateServiceImpl) CreateTemplate(db *gorm.DB, ownerID uuid.UUID, input TemplateInput) (*models.Template, error) {
	template := models.Template{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       ownerID,
		TemplateName: input.TemplateName,
		Subject:      input.Subject,
		Body:         input.Body,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *TemplateServiceImpl) GetTemplates(db *gorm.DB, ownerID uuid.UUID) ([]models.Template, error) {
	templates := []models.Template{}
	if err := db.Where("user_id = ?", ownerID).Order("created_at").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplateByID deliberately reports a foreign-owned template the same way
// as an absent one so callers cannot enumerate other users' templates.
func (s *TemplateServiceImpl) GetTemplateByID(db *gorm.DB, ownerID, id uuid.UUID) (*models.Template, error) {
	var template models.Template
	err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

// UpdateTemplate replaces the three mutable fields and stamps updated_at.
// A write that changes nothing is reported as ErrTemplateNotFound, keeping
// the zero-modification policy of the original system (see DESIGN.md).
func (s *TemplateServiceImpl) UpdateTemplate(db *gorm.DB, ownerID, id uuid.UUID, input TemplateInput) (*models.Template, error) {
	template, err := s.GetTemplateByID(db, ownerID, id)
	if err != nil {
		return nil, err
	}

	if template.TemplateName == input.TemplateName &&
		template.Subject == input.Subject &&
		template.Body == input.Body {
		return nil, ErrTemplateNotFound
	}

	now := time.Now().UTC()
	template.TemplateName = input.TemplateName
	template.Subject = input.Subject
	template.Body = input.Body
	template.UpdatedAt = &now

	if err := db.Save(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateServiceImpl) DeleteTemplate(db *gorm.DB, ownerID, id uuid.UUID) error {
	result := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Template{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
