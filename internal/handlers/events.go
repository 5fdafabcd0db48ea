package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"employee_portal/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid   = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid     = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errUserIDInvalid = "invalid 'user_id'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List leave events
// @Description  Filter the leave audit trail by date range and/or user. If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         leave
// @Produce      json
// @Param        from     query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to       query   string  false  "End of range; date-only treated as end of day"  example(2025-08-31)
// @Param        user_id  query   int     false  "Filter by user"
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/leave-events [get]
// @Security     BearerAuth
func (h *Handler) getLeaveEvents(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from   time.Time
		to     time.Time
		userID int
		err    error
	)
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": errFromInvalid})
			return
		}
	}
	// Parse 'to' (optional). If only a date is provided, make it end-of-day inclusive.
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if qs := c.Query("user_id"); qs != "" {
		userID, err = strconv.Atoi(qs)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": errUserIDInvalid})
			return
		}
	}
	// Validate range if both provided
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "'from' must be <= 'to'"})
		return
	}

	events, err := h.services.EventLog.List(ctx, service.LogFilter{
		From:   from,
		To:     to,
		UserID: userID,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load leave events", "leave_events_list_failed", err,
			"from", from, "to", to, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
