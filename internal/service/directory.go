package service

import (
	"context"

	"employee_portal/internal/models"
	"employee_portal/internal/repository"
)

type DirectoryService struct {
	departments repository.Departments
	users       repository.Users
}

func NewDirectoryService(departments repository.Departments, users repository.Users) *DirectoryService {
	return &DirectoryService{departments: departments, users: users}
}

// ListDepartments returns all departments in storage order.
func (s *DirectoryService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	if depts == nil {
		depts = []models.Department{}
	}
	return depts, nil
}

// ListUsersByDepartment returns users with an exact department match.
// An unknown department id yields an empty slice, not an error.
func (s *DirectoryService) ListUsersByDepartment(ctx context.Context, departmentID int) ([]models.User, error) {
	users, err := s.users.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
