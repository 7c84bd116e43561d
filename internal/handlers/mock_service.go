package handlers

import (
	"context"

	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID    int
	registerErr   error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastGenUsername      string
	lastGenPassword      string
	lastParseToken       string
}

func (m *mockAuth) Register(username, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTasks struct {
	listResp  []models.Task
	listErr   error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	lastListUserID   int
	lastCreateUserID int
	lastCreateTitle  string
	lastCreateDesc   string
	lastUpdateUserID int
	lastUpdateTaskID int
	lastUpdate       service.TaskUpdate
	lastDeleteUserID int
	lastDeleteTaskID int
}

func (m *mockTasks) List(ctx context.Context, userID int) ([]models.Task, error) {
	m.lastListUserID = userID
	return m.listResp, m.listErr
}
func (m *mockTasks) Create(ctx context.Context, userID int, title, description string) (int, error) {
	m.lastCreateUserID = userID
	m.lastCreateTitle = title
	m.lastCreateDesc = description
	return m.createID, m.createErr
}
func (m *mockTasks) Update(ctx context.Context, userID, taskID int, upd service.TaskUpdate) error {
	m.lastUpdateUserID = userID
	m.lastUpdateTaskID = taskID
	m.lastUpdate = upd
	return m.updateErr
}
func (m *mockTasks) Delete(ctx context.Context, userID, taskID int) error {
	m.lastDeleteUserID = userID
	m.lastDeleteTaskID = taskID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
