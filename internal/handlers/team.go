package handlers

import (
	"net/http"

	"template-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	db          *gorm.DB
	userService services.UserService
}

func NewTeamHandler(db *gorm.DB, userService services.UserService) *TeamHandler {
	return &TeamHandler{db: db, userService: userService}
}

// GetTeam lists every user except the caller so the frontend can offer task
// assignees. Password hashes never leave the model (json:"-").
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	users, err := h.userService.GetTeam(h.db, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
