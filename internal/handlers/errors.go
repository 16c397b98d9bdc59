package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"template-manager/backend/internal/middleware"
	"template-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// bindJSON parses the request body into dest and writes the 400 response on
// failure. An empty body and missing required fields get distinct generic
// messages; neither names specific fields.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		message := "Missing required fields"
		if errors.Is(err, io.EOF) {
			message = "No input data provided"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return false
	}
	return true
}

// currentUserID reads the identity the auth middleware stored. A miss means
// the route was wired without RequireAuth, which is a server bug, but it is
// still reported as a plain 401.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

// handleServiceError maps service sentinels to status codes. Foreign-owned
// and absent resources are both 404 on purpose. Unclassified errors become a
// generic 500; the underlying error is logged, never sent to the client.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Template not found"})
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	case errors.Is(err, services.ErrAssigneeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Assigned user not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		log.Printf("unhandled service error: %v (%s %s)", err, c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
