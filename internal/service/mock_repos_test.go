package service

import (
	"context"
	"time"

	"employee_portal/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUserRepo struct {
	CreateFn           func(username, hash string, departmentID *int, role string) (int, error)
	GetByUsernameFn    func(username string) (*models.User, error)
	GetByIDFn          func(ctx context.Context, id int) (*models.User, error)
	ListByDepartmentFn func(ctx context.Context, departmentID int) ([]models.User, error)
	DeductLeaveFn      func(ctx context.Context, userID, days int) (int, error)

	getCalls    []string
	deductCalls []struct {
		userID int
		days   int
	}
}

func (m *mockUserRepo) Create(username, hash string, departmentID *int, role string) (int, error) {
	return m.CreateFn(username, hash, departmentID, role)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockUserRepo) ListByDepartment(ctx context.Context, departmentID int) ([]models.User, error) {
	return m.ListByDepartmentFn(ctx, departmentID)
}

func (m *mockUserRepo) DeductLeave(ctx context.Context, userID, days int) (int, error) {
	m.deductCalls = append(m.deductCalls, struct {
		userID int
		days   int
	}{userID: userID, days: days})
	return m.DeductLeaveFn(ctx, userID, days)
}

type mockDepartmentRepo struct {
	UpsertFn   func(name, manager string) error
	IDByNameFn func(name string) (int, error)
	ListFn     func(ctx context.Context) ([]models.Department, error)
}

func (m *mockDepartmentRepo) Upsert(name, manager string) error { return m.UpsertFn(name, manager) }
func (m *mockDepartmentRepo) IDByName(name string) (int, error) { return m.IDByNameFn(name) }
func (m *mockDepartmentRepo) List(ctx context.Context) ([]models.Department, error) {
	return m.ListFn(ctx)
}

type mockEventRepo struct {
	AppendFn func(ctx context.Context, e models.LeaveEvent) error
	ListFn   func(ctx context.Context, from, to time.Time, userID int) ([]models.LeaveEvent, error)

	appended []models.LeaveEvent
	lastFrom time.Time
	lastTo   time.Time
	lastUser int
}

func (m *mockEventRepo) Append(ctx context.Context, e models.LeaveEvent) error {
	m.appended = append(m.appended, e)
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *mockEventRepo) List(ctx context.Context, from, to time.Time, userID int) ([]models.LeaveEvent, error) {
	m.lastFrom, m.lastTo, m.lastUser = from, to, userID
	if m.ListFn != nil {
		return m.ListFn(ctx, from, to, userID)
	}
	return nil, nil
}
