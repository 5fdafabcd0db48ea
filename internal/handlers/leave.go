package handlers

import (
	"errors"
	"net/http"

	"employee_portal/internal/service"

	"github.com/gin-gonic/gin"
)

type leaveRequestBody struct {
	UserID    int  `json:"userId" binding:"required"`
	LeaveDays *int `json:"leaveDays" binding:"required"` // pointer so 0 passes required
}

// @Summary      Request leave
// @Description  Deducts leaveDays from the user's balance. The balance never goes negative; a request that would overdraw it is rejected and nothing changes.
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body  body  leaveRequestBody  true  "Leave request"
// @Success      200  {object}  map[string]interface{}  "message, leave_balance"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /leave-request [post]
func (h *Handler) leaveRequest(c *gin.Context) {
	var input leaveRequestBody
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	ctx := c.Request.Context()
	balance, err := h.services.Leave.Request(ctx, input.UserID, *input.LeaveDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough leave balance"})
		case errors.Is(err, service.ErrNegativeLeaveDays):
			c.JSON(http.StatusBadRequest, gin.H{"message": "leaveDays must not be negative"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "internal error", "leave_request_failed", err, "user_id", input.UserID)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave request approved", "leave_balance": balance})
}
