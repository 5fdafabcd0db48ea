package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee_portal/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password_hash, department_id, role) VALUES (?, ?, ?, ?)`

	selectUserByUsernameSQL = `
		SELECT id, username, password_hash, department_id, role, leave_balance
		FROM users WHERE username = ?`

	selectUserByIDSQL = `
		SELECT id, username, password_hash, department_id, role, leave_balance
		FROM users WHERE id = ?`

	selectUsersByDepartmentSQL = `
		SELECT id, username, password_hash, department_id, role, leave_balance
		FROM users WHERE department_id = ? ORDER BY id`

	// Single conditional update: the balance guard and the write happen in one
	// statement, so two overlapping requests can never both pass a stale check.
	deductLeaveSQL = `
		UPDATE users SET leave_balance = leave_balance - ?
		WHERE id = ? AND leave_balance >= ?
		RETURNING leave_balance`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, passwordHash string, departmentID *int, role string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash, departmentID, role)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u      models.User
		deptID sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &deptID, &u.Role, &u.LeaveBalance)
	if err != nil {
		return nil, err
	}
	if deptID.Valid {
		id := int(deptID.Int64)
		u.DepartmentID = &id
	}
	return &u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// ListByDepartment returns users in the given department, id order.
// An unknown department id yields an empty slice, not an error.
func (r *UserRepository) ListByDepartment(ctx context.Context, departmentID int) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersByDepartmentSQL, departmentID)
	if err != nil {
		return nil, fmt.Errorf("select users for department %d: %w", departmentID, err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 8)
	for rows.Next() {
		var (
			u      models.User
			deptID sql.NullInt64
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &deptID, &u.Role, &u.LeaveBalance); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if deptID.Valid {
			id := int(deptID.Int64)
			u.DepartmentID = &id
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeductLeave atomically subtracts days from the user's balance and returns
// the new balance. The WHERE guard rejects any deduction that would drive the
// balance negative; when no row is updated the cause is disambiguated into
// ErrUserNotFound or ErrInsufficientBalance.
func (r *UserRepository) DeductLeave(ctx context.Context, userID, days int) (int, error) {
	var balance int
	err := r.db.QueryRowContext(ctx, deductLeaveSQL, days, userID, days).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("deduct leave for user %d: %w", userID, err)
	}

	// Guard failed: absent user or not enough balance.
	var current int
	err = r.db.QueryRowContext(ctx, `SELECT leave_balance FROM users WHERE id = ?`, userID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("select balance for user %d: %w", userID, err)
	}
	return current, ErrInsufficientBalance
}
