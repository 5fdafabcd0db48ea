package handlers

import (
	"context"
	"net/http"
	"time"

	"employee_portal/internal/models"
	"employee_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
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

type mockDirectory struct {
	departments []models.Department
	deptErr     error
	users       []models.User
	usersErr    error

	lastDepartmentID int
}

func (m *mockDirectory) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return m.departments, m.deptErr
}
func (m *mockDirectory) ListUsersByDepartment(ctx context.Context, departmentID int) ([]models.User, error) {
	m.lastDepartmentID = departmentID
	return m.users, m.usersErr
}

type mockLeave struct {
	balance int
	err     error

	lastUserID int
	lastDays   int
	calls      int
}

func (m *mockLeave) Request(ctx context.Context, userID, days int) (int, error) {
	m.calls++
	m.lastUserID = userID
	m.lastDays = days
	return m.balance, m.err
}

type mockEventLog struct {
	resp     []models.LeaveEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastUser int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.LeaveEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastUser = f.UserID
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
