package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"employee_portal/internal/models"

	"github.com/google/uuid"
)

type LeaveEventRepository struct {
	db *sql.DB
}

func NewLeaveEventRepository(db *sql.DB) *LeaveEventRepository { return &LeaveEventRepository{db: db} }

var _ LeaveEvents = (*LeaveEventRepository)(nil)

// Timestamps are stored as TEXT in this layout. Lexicographic order on the
// stored strings matches chronological order, so range filters can compare
// directly; every bound time argument must use the same layout.
const sqliteTimestampLayout = "2006-01-02 15:04:05.999999999"

// Append inserts a new event. Empty EventID and OccurredAt are filled in.
func (r *LeaveEventRepository) Append(ctx context.Context, e models.LeaveEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_events (id, occurred_at, user_id, days, balance_after)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(sqliteTimestampLayout),
		e.UserID,
		e.Days,
		e.BalanceAfter,
	)

	return err
}

// List returns events filtered by [from, to] (inclusive) and/or user, ordered ASC.
// A zero time bound or userID <= 0 means "no filter" for that clause.
func (r *LeaveEventRepository) List(ctx context.Context, from, to time.Time, userID int) ([]models.LeaveEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimestampLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimestampLayout))
	}
	if userID > 0 {
		conds = append(conds, "user_id = ?")
		args = append(args, userID)
	}

	q := `SELECT id, occurred_at, user_id, days, balance_after FROM leave_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.LeaveEvent, 0, 64)
	for rows.Next() {
		var ev models.LeaveEvent
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.UserID, &ev.Days, &ev.BalanceAfter); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
