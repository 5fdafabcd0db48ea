package service

import (
	"context"
	"errors"
	"time"

	"employee_portal/internal/models"
	"employee_portal/internal/repository"
)

type EventLogService struct {
	events repository.LeaveEvents
}

func NewEventLogService(events repository.LeaveEvents) *EventLogService {
	return &EventLogService{events: events}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.LeaveEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}

	return s.events.List(ctx, from, to, f.UserID)
}
