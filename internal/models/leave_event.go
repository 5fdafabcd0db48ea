package models

import "time"

// LeaveEvent is a single entry in the append-only leave audit trail.
type LeaveEvent struct {
	EventID      string    `json:"event_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	UserID       int       `json:"user_id"`
	Days         int       `json:"days"`
	BalanceAfter int       `json:"balance_after"`
}
