package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee_portal/internal/models"
)

type DepartmentRepository struct {
	db *sql.DB
}

func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Ensure implementation of Departments interface at compile time.
var _ Departments = (*DepartmentRepository)(nil)

const (
	upsertDepartmentSQL     = `INSERT OR IGNORE INTO departments (name, manager) VALUES (?, ?)`
	selectDepartmentIDSQL   = `SELECT id FROM departments WHERE name = ?`
	selectAllDepartmentsSQL = `SELECT id, name, manager FROM departments ORDER BY id`
)

// Upsert inserts a department, silently keeping the existing row when the
// unique name is already present. Re-running the seed leaves the table as-is.
func (r *DepartmentRepository) Upsert(name, manager string) error {
	if _, err := r.db.Exec(upsertDepartmentSQL, name, manager); err != nil {
		return fmt.Errorf("insert department %q: %w", name, err)
	}
	return nil
}

// IDByName resolves a department id by its unique name.
// Returns 0 and no error when the department does not exist.
func (r *DepartmentRepository) IDByName(name string) (int, error) {
	var id int
	err := r.db.QueryRow(selectDepartmentIDSQL, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("select department %q: %w", name, err)
	}
	return id, nil
}

// List returns all departments in storage order.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.QueryContext(ctx, selectAllDepartmentsSQL)
	if err != nil {
		return nil, fmt.Errorf("select departments: %w", err)
	}
	defer rows.Close()

	out := make([]models.Department, 0, 8)
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Manager); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
