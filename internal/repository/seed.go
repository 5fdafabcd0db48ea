package repository

import (
	"fmt"

	"employee_portal/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// seedBcryptCost matches the cost the demo accounts were provisioned with.
const seedBcryptCost = 10

type seedDepartment struct {
	Name    string
	Manager string
}

type seedUser struct {
	Username   string
	Password   string
	Department string
	Role       string
}

var demoDepartments = []seedDepartment{
	{Name: "Software Development", Manager: "John Anderson"},
	{Name: "Quality Assurance", Manager: "Emily Clarke"},
	{Name: "Product Management", Manager: "Ajay Patel"},
	{Name: "System Administration", Manager: "David Miller"},
	{Name: "Human Resources", Manager: "Rita Sharma"},
	{Name: "IT Support", Manager: "Michael Taylor"},
	{Name: "Research & Development", Manager: "Nina Gupta"},
}

var demoUsers = []seedUser{
	{Username: "Sudhanshu", Password: "password123", Department: "Software Development", Role: "user"},
	{Username: "Manohar", Password: "password123", Department: "Software Development", Role: "user"},
	{Username: "Yashwant", Password: "password123", Department: "Software Development", Role: "user"},
	{Username: "Amit", Password: "password123", Department: "Human Resources", Role: "user"},
	{Username: "Raj", Password: "password123", Department: "Human Resources", Role: "user"},
	{Username: "Arun", Password: "password123", Department: "Quality Assurance", Role: "user"},
	{Username: "Suresh", Password: "password123", Department: "Quality Assurance", Role: "user"},
	{Username: "Priya", Password: "password123", Department: "Product Management", Role: "user"},
	{Username: "Neha", Password: "password123", Department: "Product Management", Role: "user"},
	{Username: "Vijay", Password: "password123", Department: "System Administration", Role: "user"},
	{Username: "Karan", Password: "password123", Department: "System Administration", Role: "user"},
	{Username: "Deepak", Password: "password123", Department: "IT Support", Role: "user"},
	{Username: "Anil", Password: "password123", Department: "IT Support", Role: "user"},
	{Username: "Ravi", Password: "password123", Department: "Research & Development", Role: "user"},
	{Username: "Suman", Password: "password123", Department: "Research & Development", Role: "user"},
	{Username: "Komal", Password: "password123", Department: "Software Development", Role: "user"},
	{Username: "Vandana", Password: "password123", Department: "Human Resources", Role: "user"},
	{Username: "Ritika", Password: "password123", Department: "Quality Assurance", Role: "user"},
	{Username: "Sandeep", Password: "password123", Department: "IT Support", Role: "user"},
	{Username: "Abhishek", Password: "password123", Department: "System Administration", Role: "user"},
}

// SeedDemoData loads the demo departments and users. Department seeding is
// idempotent (unique name, insert-or-ignore). User seeding is not: on a
// second run each insert fails uniqueness; such failures are logged per row
// and the batch continues with the remaining rows.
func SeedDemoData(repos *Repository, log *logger.Logger) error {
	if err := seedDepartments(repos.Departments, demoDepartments, log); err != nil {
		return err
	}
	seedUsers(repos, demoUsers, log)
	return nil
}

func seedDepartments(depts Departments, rows []seedDepartment, log *logger.Logger) error {
	for _, d := range rows {
		if err := depts.Upsert(d.Name, d.Manager); err != nil {
			return fmt.Errorf("seed department %q: %w", d.Name, err)
		}
	}
	if log != nil {
		log.Infow("departments seeded", "count", len(rows))
	}
	return nil
}

// seedUsers inserts demo accounts, hashing each password and resolving the
// department by name. A missing department skips the row; an insert failure
// (typically a duplicate username on re-run) is reported and the loop moves on.
func seedUsers(repos *Repository, rows []seedUser, log *logger.Logger) {
	inserted, skipped, failed := 0, 0, 0
	for _, u := range rows {
		deptID, err := repos.Departments.IDByName(u.Department)
		if err != nil {
			failed++
			if log != nil {
				log.Warnw("seed user: department lookup failed", "username", u.Username, "err", err)
			}
			continue
		}
		if deptID == 0 {
			skipped++
			if log != nil {
				log.Warnw("seed user: department not found, skipping", "username", u.Username, "department", u.Department)
			}
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), seedBcryptCost)
		if err != nil {
			failed++
			if log != nil {
				log.Warnw("seed user: hash password failed", "username", u.Username, "err", err)
			}
			continue
		}

		if _, err := repos.Users.Create(u.Username, string(hash), &deptID, u.Role); err != nil {
			failed++
			if log != nil {
				log.Warnw("seed user: insert failed", "username", u.Username, "err", err)
			}
			continue
		}
		inserted++
	}
	if log != nil {
		log.Infow("users seeded", "inserted", inserted, "skipped", skipped, "failed", failed)
	}
}
