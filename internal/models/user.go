package models

// User is an employee account. Passwords are stored as bcrypt hashes and the
// hash never leaves the process in an API response.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
	DepartmentID *int   `json:"department_id,omitempty"`
	Role         string `json:"role"`
	LeaveBalance int    `json:"leave_balance"`
}
