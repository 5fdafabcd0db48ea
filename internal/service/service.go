package service

import (
	"context"
	"time"

	"employee_portal/internal/models"
	"employee_portal/internal/repository"
)

type Authorization interface {
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Directory exposes read-only department/user listings.
type Directory interface {
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListUsersByDepartment(ctx context.Context, departmentID int) ([]models.User, error)
}

// Leave owns the one stateful business rule: deducting leave days from a
// user's balance without ever letting it go negative.
type Leave interface {
	Request(ctx context.Context, userID, days int) (int, error)
}

// EventLog exposes the append-only leave audit trail with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LeaveEvent, error)
}

// LogFilter narrows the audit trail by time range and/or user.
type LogFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	UserID int       // 0 means all users
}

type Service struct {
	Authorization
	Directory
	Leave
	EventLog
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Directory:     NewDirectoryService(repos.Departments, repos.Users),
		Leave:         NewLeaveService(repos.Users, repos.Events),
		EventLog:      NewEventLogService(repos.Events),
	}
}
