package services

import (
	"errors"
	"fmt"
	"time"

	"template-manager/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskInput struct {
	AssignedUser string `json:"assigned_user" binding:"required"`
	TaskDate     string `json:"task_date" binding:"required"`
	TaskTime     string `json:"task_time" binding:"required"`
	TaskMsg      string `json:"task_msg" binding:"required"`
}

type TaskService interface {
	CreateTask(db *gorm.DB, assignerID uuid.UUID, input TaskInput) (*models.Task, error)
	GetTasks(db *gorm.DB, assigneeID uuid.UUID) ([]models.TaskView, error)
	GetTaskByID(db *gorm.DB, assigneeID, id uuid.UUID) (*models.TaskView, error)
	UpdateTask(db *gorm.DB, assigneeID, id uuid.UUID, isCompleted int) (string, error)
	DeleteTask(db *gorm.DB, assigneeID, id uuid.UUID) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

// CreateTask assigns a task to an existing user. Self-assignment is allowed.
// A malformed or unknown assignee id both resolve to ErrAssigneeNotFound.
func (s *TaskServiceImpl) CreateTask(db *gorm.DB, assignerID uuid.UUID, input TaskInput) (*models.Task, error) {
	assigneeID, err := uuid.FromString(input.AssignedUser)
	if err != nil {
		return nil, ErrAssigneeNotFound
	}

	var assignee models.User
	if err := db.First(&assignee, "id = ?", assigneeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, err
	}

	task := models.Task{
		ID:           uuid.Must(uuid.NewV4()),
		AssignedBy:   assignerID,
		AssignedUser: assigneeID,
		TaskDate:     input.TaskDate,
		TaskTime:     input.TaskTime,
		TaskMsg:      input.TaskMsg,
		IsCompleted:  0,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskServiceImpl) GetTasks(db *gorm.DB, assigneeID uuid.UUID) ([]models.TaskView, error) {
	tasks := []models.Task{}
	if err := db.Where("assigned_user = ?", assigneeID).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return enrichTasks(db, tasks)
}

func (s *TaskServiceImpl) GetTaskByID(db *gorm.DB, assigneeID, id uuid.UUID) (*models.TaskView, error) {
	task, err := findAssignedTask(db, assigneeID, id)
	if err != nil {
		return nil, err
	}
	views, err := enrichTasks(db, []models.Task{*task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// UpdateTask flips is_completed, the only mutable field. A write that leaves
// the flag unchanged is reported as ErrTaskNotFound (zero-modification
// policy, see DESIGN.md). On success it returns a completion notice naming
// the assignee; nothing delivers it, the caller just gets the string.
func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, assigneeID, id uuid.UUID, isCompleted int) (string, error) {
	task, err := findAssignedTask(db, assigneeID, id)
	if err != nil {
		return "", err
	}

	if task.IsCompleted == isCompleted {
		return "", ErrTaskNotFound
	}

	now := time.Now().UTC()
	task.IsCompleted = isCompleted
	task.UpdatedAt = &now
	if err := db.Save(task).Error; err != nil {
		return "", err
	}

	var assignee models.User
	if err := db.First(&assignee, "id = ?", task.AssignedUser).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("Task completed by %s", assignee.FullName()), nil
}

func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, assigneeID, id uuid.UUID) error {
	result := db.Where("id = ? AND assigned_user = ?", id, assigneeID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func findAssignedTask(db *gorm.DB, assigneeID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := db.Where("id = ? AND assigned_user = ?", id, assigneeID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// enrichTasks resolves assigner and assignee display names with a single
// batched user fetch per call rather than two lookups per task.
func enrichTasks(db *gorm.DB, tasks []models.Task) ([]models.TaskView, error) {
	views := make([]models.TaskView, 0, len(tasks))
	if len(tasks) == 0 {
		return views, nil
	}

	idSet := make(map[uuid.UUID]struct{}, len(tasks)*2)
	for _, task := range tasks {
		idSet[task.AssignedBy] = struct{}{}
		idSet[task.AssignedUser] = struct{}{}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FullName()
	}

	for _, task := range tasks {
		views = append(views, models.TaskView{
			Task:           task,
			AssignedByName: names[task.AssignedBy],
			AssignedToName: names[task.AssignedUser],
		})
	}
	return views, nil
}
