package handlers_test

import (
	"bytes"
	"net/http"

	"template-manager/backend/internal/middleware"
	"template-manager/backend/internal/models"
	"template-manager/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Hand-written service mocks; each returns the configured sentinel error
// when set, otherwise canned data.

type MockRegisterService struct {
	err  error
	user *models.User
}

func (m *MockRegisterService) RegisterUser(db *gorm.DB, req services.RegistrationRequest) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user != nil {
		return m.user, nil
	}
	return &models.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil
}

type MockAuthService struct {
	loginErr error
	tokenErr error
	user     *models.User
}

func (m *MockAuthService) LoginUser(db *gorm.DB, email, password string) (*models.User, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	if m.user != nil {
		return m.user, nil
	}
	return &models.User{ID: uuid.Must(uuid.NewV4()), Email: email}, nil
}

func (m *MockAuthService) GenerateToken(userID uuid.UUID) (string, error) {
	if m.tokenErr != nil {
		return "", m.tokenErr
	}
	return "mock-token", nil
}

type MockTemplateService struct {
	err       error
	templates []models.Template
}

func (m *MockTemplateService) CreateTemplate(db *gorm.DB, ownerID uuid.UUID, input services.TemplateInput) (*models.Template, error) {
	if m.err != nil {
		return nil, m.err
	}
	template := models.Template{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       ownerID,
		TemplateName: input.TemplateName,
		Subject:      input.Subject,
		Body:         input.Body,
	}
	m.templates = append(m.templates, template)
	return &template, nil
}

func (m *MockTemplateService) GetTemplates(db *gorm.DB, ownerID uuid.UUID) ([]models.Template, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.templates, nil
}

func (m *MockTemplateService) GetTemplateByID(db *gorm.DB, ownerID, id uuid.UUID) (*models.Template, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.templates {
		if m.templates[i].ID == id {
			return &m.templates[i], nil
		}
	}
	return nil, services.ErrTemplateNotFound
}

func (m *MockTemplateService) UpdateTemplate(db *gorm.DB, ownerID, id uuid.UUID, input services.TemplateInput) (*models.Template, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Template{ID: id, UserID: ownerID}, nil
}

func (m *MockTemplateService) DeleteTemplate(db *gorm.DB, ownerID, id uuid.UUID) error {
	return m.err
}

type MockTaskService struct {
	err          error
	notification string
	views        []models.TaskView
}

func (m *MockTaskService) CreateTask(db *gorm.DB, assignerID uuid.UUID, input services.TaskInput) (*models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Task{ID: uuid.Must(uuid.NewV4()), AssignedBy: assignerID}, nil
}

func (m *MockTaskService) GetTasks(db *gorm.DB, assigneeID uuid.UUID) ([]models.TaskView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.views, nil
}

func (m *MockTaskService) GetTaskByID(db *gorm.DB, assigneeID, id uuid.UUID) (*models.TaskView, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.views) > 0 {
		return &m.views[0], nil
	}
	return &models.TaskView{Task: models.Task{ID: id, AssignedUser: assigneeID}}, nil
}

func (m *MockTaskService) UpdateTask(db *gorm.DB, assigneeID, id uuid.UUID, isCompleted int) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.notification, nil
}

func (m *MockTaskService) DeleteTask(db *gorm.DB, assigneeID, id uuid.UUID) error {
	return m.err
}

type MockUserService struct {
	err   error
	users []models.User
}

func (m *MockUserService) GetUserByID(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.User{ID: id}, nil
}

func (m *MockUserService) GetTeam(db *gorm.DB, excludeID uuid.UUID) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

// newTestRouter returns a router whose requests carry a fixed authenticated
// identity, the way RequireAuth would set it.
func newTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		middleware.SetUserID(c, userID)
		c.Next()
	})
	return router
}

func newTestRouterNoAuth() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newRequestWithBody(method, path string, body []byte) *http.Request {
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
