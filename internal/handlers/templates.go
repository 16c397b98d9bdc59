package handlers

import (
	"net/http"

	"template-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TemplateHandler struct {
	db              *gorm.DB
	templateService services.TemplateService
}

func NewTemplateHandler(db *gorm.DB, templateService services.TemplateService) *TemplateHandler {
	return &TemplateHandler{db: db, templateService: templateService}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.TemplateInput
	if !bindJSON(c, &input) {
		return
	}

	template, err := h.templateService.CreateTemplate(h.db, ownerID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Template created",
		"id":      template.ID.String(),
	})
}

func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	templates, err := h.templateService.GetTemplates(h.db, ownerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetTemplateByID(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := templateID(c)
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplateByID(h.db, ownerID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := templateID(c)
	if !ok {
		return
	}

	var input services.TemplateInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := h.templateService.UpdateTemplate(h.db, ownerID, id, input); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template updated successfully"})
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := templateID(c)
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(h.db, ownerID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

func templateID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid template ID format"})
		return uuid.Nil, false
	}
	return id, true
}
