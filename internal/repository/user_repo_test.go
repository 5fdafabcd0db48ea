package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"employee_portal/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(mockDB)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = mockDB.Close()
	}
	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"id", "username", "password_hash", "department_id", "role", "leave_balance"}
}

func TestUserRepository_Create(t *testing.T) {
	deptID := 3
	tests := []struct {
		name           string
		username       string
		passwordHash   string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        bool
		errContainsStr string
	}{
		{
			name:         "success",
			username:     "alice",
			passwordHash: "h123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "h123", &deptID, "user").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID:  42,
			wantErr: false,
		},
		{
			name:         "duplicate username",
			username:     "bob",
			passwordHash: "h456",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("bob", "h456", &deptID, "user").
					WillReturnError(errors.New("UNIQUE constraint failed: users.username"))
			},
			wantID:         0,
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name:         "last insert id error",
			username:     "carol",
			passwordHash: "h789",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("carol", "h789", &deptID, "user").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			wantID:         0,
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(tt.username, tt.passwordHash, &deptID, "user")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				if id != 0 {
					t.Fatalf("expected id=0 on error, got %d", id)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		mockExpect     func(sqlmock.Sqlmock)
		wantUser       *models.User
		wantErr        bool
		errContainsStr string
	}{
		{
			name:     "found",
			username: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns()).
					AddRow(7, "alice", "h123", 2, "user", 20)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: &models.User{
				ID:           7,
				Username:     "alice",
				PasswordHash: "h123",
				Role:         "user",
				LeaveBalance: 20,
			},
			wantErr: false,
		},
		{
			name:     "not found (ErrNoRows)",
			username: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
			wantErr:  false,
		},
		{
			name:     "query error",
			username: "bob",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
					WithArgs("bob").
					WillReturnError(errors.New("db query failed"))
			},
			wantUser:       nil,
			wantErr:        true,
			errContainsStr: "select user",
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByUsername(tt.username)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				if u != nil {
					t.Fatalf("expected user=nil on error, got %+v", u)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.Username != tt.wantUser.Username || u.PasswordHash != tt.wantUser.PasswordHash {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
			if u.DepartmentID == nil || *u.DepartmentID != 2 {
				t.Fatalf("expected department_id 2, got %v", u.DepartmentID)
			}
		})
	}
}

func TestUserRepository_ListByDepartment(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "Sudhanshu", "h1", 1, "user", 20).
		AddRow(2, "Manohar", "h2", 1, "user", 15)
	mock.ExpectQuery(regexp.QuoteMeta(selectUsersByDepartmentSQL)).
		WithArgs(1).
		WillReturnRows(rows)

	users, err := repo.ListByDepartment(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Username != "Manohar" || users[1].LeaveBalance != 15 {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
}

func TestUserRepository_ListByDepartment_UnknownDepartmentIsEmpty(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUsersByDepartmentSQL)).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	users, err := repo.ListByDepartment(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(users))
	}
}

func TestUserRepository_DeductLeave(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		days        int
		mockExpect  func(sqlmock.Sqlmock)
		wantBalance int
		wantErr     error
	}{
		{
			name:   "success",
			userID: 7,
			days:   5,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(deductLeaveSQL)).
					WithArgs(5, 7, 5).
					WillReturnRows(sqlmock.NewRows([]string{"leave_balance"}).AddRow(15))
			},
			wantBalance: 15,
		},
		{
			name:   "zero days is a no-op success",
			userID: 7,
			days:   0,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(deductLeaveSQL)).
					WithArgs(0, 7, 0).
					WillReturnRows(sqlmock.NewRows([]string{"leave_balance"}).AddRow(20))
			},
			wantBalance: 20,
		},
		{
			name:   "insufficient balance",
			userID: 7,
			days:   25,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(deductLeaveSQL)).
					WithArgs(25, 7, 25).
					WillReturnError(sql.ErrNoRows)
				m.ExpectQuery(regexp.QuoteMeta(`SELECT leave_balance FROM users WHERE id = ?`)).
					WithArgs(7).
					WillReturnRows(sqlmock.NewRows([]string{"leave_balance"}).AddRow(20))
			},
			wantBalance: 20,
			wantErr:     ErrInsufficientBalance,
		},
		{
			name:   "user not found",
			userID: 404,
			days:   1,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(deductLeaveSQL)).
					WithArgs(1, 404, 1).
					WillReturnError(sql.ErrNoRows)
				m.ExpectQuery(regexp.QuoteMeta(`SELECT leave_balance FROM users WHERE id = ?`)).
					WithArgs(404).
					WillReturnError(sql.ErrNoRows)
			},
			wantBalance: 0,
			wantErr:     ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			balance, err := repo.DeductLeave(context.Background(), tt.userID, tt.days)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if balance != tt.wantBalance {
				t.Fatalf("unexpected balance: want %d, got %d", tt.wantBalance, balance)
			}
		})
	}
}

func contains(s, substr string) bool {
	return len(substr) == 0 || (len(s) >= len(substr) && regexp.MustCompile(regexp.QuoteMeta(substr)).FindStringIndex(s) != nil)
}
