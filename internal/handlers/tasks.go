package handlers

import (
	"net/http"

	"template-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
}

// is_completed is a pointer so that an explicit 0 still satisfies the
// required binding. The value is caller-supplied and not restricted to {0,1}.
type UpdateTaskRequest struct {
	IsCompleted *int `json:"is_completed" binding:"required"`
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	assignerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.TaskInput
	if !bindJSON(c, &input) {
		return
	}

	task, err := h.taskService.CreateTask(h.db, assignerID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created",
		"id":      task.ID.String(),
	})
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	assigneeID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasks(h.db, assigneeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	assigneeID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(h.db, assigneeID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	assigneeID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	notification, err := h.taskService.UpdateTask(h.db, assigneeID, id, *req.IsCompleted)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Task updated successfully",
		"notification": notification,
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	assigneeID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(h.db, assigneeID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func taskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task ID format"})
		return uuid.Nil, false
	}
	return id, true
}
