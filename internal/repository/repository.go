package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"employee_portal/internal/models"
)

// Guard failures surfaced by the storage layer so callers can map them to
// specific responses without parsing error strings.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)

type Users interface {
	Create(username, passwordHash string, departmentID *int, role string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]models.User, error)
	DeductLeave(ctx context.Context, userID, days int) (int, error)
}

type Departments interface {
	Upsert(name, manager string) error
	IDByName(name string) (int, error)
	List(ctx context.Context) ([]models.Department, error)
}

type LeaveEvents interface {
	Append(ctx context.Context, e models.LeaveEvent) error
	List(ctx context.Context, from, to time.Time, userID int) ([]models.LeaveEvent, error)
}

type Repository struct {
	Users       Users
	Departments Departments
	Events      LeaveEvents
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(conn),
		Departments: NewDepartmentRepository(conn),
		Events:      NewLeaveEventRepository(conn),
	}
}
