package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Task is assigned by one user to another. Read and mutation rights belong to
// the assignee only; the assigner cannot see the task again through the API.
type Task struct {
	ID           uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	AssignedBy   uuid.UUID  `json:"assigned_by" gorm:"type:uuid;not null"`
	AssignedUser uuid.UUID  `json:"assigned_user" gorm:"type:uuid;not null;index"`
	TaskDate     string     `json:"task_date" gorm:"not null"`
	TaskTime     string     `json:"task_time" gorm:"not null"`
	TaskMsg      string     `json:"task_msg" gorm:"not null"`
	IsCompleted  int        `json:"is_completed" gorm:"not null;default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}

// TaskView is a Task enriched with the display names of the assigner and
// assignee, resolved at read time.
type TaskView struct {
	Task
	AssignedByName string `json:"assigned_by_name" gorm:"-"`
	AssignedToName string `json:"assigned_to_name" gorm:"-"`
}
