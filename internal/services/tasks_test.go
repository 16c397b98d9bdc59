package services_test

import (
	"testing"

	"template-manager/backend/internal/models"
	"template-manager/backend/internal/services"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)
	assert.Equal(t, assigner.ID, task.AssignedBy)
	assert.Equal(t, assignee.ID, task.AssignedUser)
	assert.Equal(t, 0, task.IsCompleted)
	assert.Nil(t, task.UpdatedAt)
}

func TestCreateTaskSelfAssignmentAllowed(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, user.ID, services.TaskInput{
		AssignedUser: user.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "09:00",
		TaskMsg:      "Note to self",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, task.AssignedBy)
	assert.Equal(t, user.ID, task.AssignedUser)
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	svc := services.NewTaskService()

	for _, assignedUser := range []string{
		uuid.Must(uuid.NewV4()).String(), // well-formed but unknown
		"not-a-uuid",                     // malformed
	} {
		_, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
			AssignedUser: assignedUser,
			TaskDate:     "2026-09-01",
			TaskTime:     "14:30",
			TaskMsg:      "dangling",
		})
		assert.ErrorIs(t, err, services.ErrAssigneeNotFound)
	}

	var count int64
	db.Model(&models.Task{}).Count(&count)
	assert.Equal(t, int64(0), count, "no task document may be persisted on failure")
}

func TestGetTasksEnrichment(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	_, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)

	// Visible to the assignee, with display names resolved.
	views, err := svc.GetTasks(db, assignee.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ada Lovelace", views[0].AssignedByName)
	assert.Equal(t, "Grace Hopper", views[0].AssignedToName)

	// Invisible to the assigner.
	assignerViews, err := svc.GetTasks(db, assigner.ID)
	require.NoError(t, err)
	assert.Empty(t, assignerViews)
}

func TestGetTaskByIDAssigneeScoping(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)

	view, err := svc.GetTaskByID(db, assignee.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Review the launch checklist", view.TaskMsg)

	// The assigner cannot read back the task they created.
	_, err = svc.GetTaskByID(db, assigner.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestUpdateTaskCompletion(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)

	notification, err := svc.UpdateTask(db, assignee.ID, task.ID, 1)
	require.NoError(t, err)
	assert.Contains(t, notification, "Grace Hopper")

	var stored models.Task
	require.NoError(t, db.First(&stored, "id = ?", task.ID).Error)
	assert.Equal(t, 1, stored.IsCompleted)
	require.NotNil(t, stored.UpdatedAt)

	// Repeating the identical update is a no-op write, reported as NotFound.
	_, err = svc.UpdateTask(db, assignee.ID, task.ID, 1)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestUpdateTaskForeignOrAbsent(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)

	_, err = svc.UpdateTask(db, assigner.ID, task.ID, 1)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	_, err = svc.UpdateTask(db, assignee.ID, uuid.Must(uuid.NewV4()), 1)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	db := setupTestDB(t)
	assigner := createTestUser(t, db, "Ada", "Lovelace", "ada@example.com")
	assignee := createTestUser(t, db, "Grace", "Hopper", "grace@example.com")
	svc := services.NewTaskService()

	task, err := svc.CreateTask(db, assigner.ID, services.TaskInput{
		AssignedUser: assignee.ID.String(),
		TaskDate:     "2026-09-01",
		TaskTime:     "14:30",
		TaskMsg:      "Review the launch checklist",
	})
	require.NoError(t, err)

	// The assigner cannot cancel the task they created.
	err = svc.DeleteTask(db, assigner.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(db, assignee.ID, task.ID))

	err = svc.DeleteTask(db, assignee.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}
