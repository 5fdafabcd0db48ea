package service

import (
	"context"
	"errors"
	"time"

	"employee_portal/internal/models"
	"employee_portal/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for leave requests. Not-found and guard failures re-use the
// repository sentinels so handlers can match with errors.Is either way.
var (
	ErrNegativeLeaveDays   = errors.New("leaveDays must not be negative")
	ErrInsufficientBalance = repository.ErrInsufficientBalance
)

type LeaveService struct {
	users  repository.Users
	events repository.LeaveEvents
}

func NewLeaveService(users repository.Users, events repository.LeaveEvents) *LeaveService {
	return &LeaveService{users: users, events: events}
}

// Request deducts days from the user's leave balance and returns the new
// balance. Zero days is a valid no-op request; negative days are rejected
// rather than silently crediting the balance. The deduction itself is a
// single conditional update in the repository, so overlapping requests for
// the same user cannot jointly overdraw the balance.
func (s *LeaveService) Request(ctx context.Context, userID, days int) (int, error) {
	if days < 0 {
		return 0, ErrNegativeLeaveDays
	}

	balance, err := s.users.DeductLeave(ctx, userID, days)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return balance, err
	}

	if err := s.events.Append(ctx, models.LeaveEvent{
		EventID:      uuid.NewString(),
		OccurredAt:   time.Now().UTC(),
		UserID:       userID,
		Days:         days,
		BalanceAfter: balance,
	}); err != nil {
		return balance, err
	}

	return balance, nil
}
