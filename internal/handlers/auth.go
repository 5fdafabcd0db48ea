package handlers

import (
	"errors"
	"net/http"

	"employee_portal/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return false
	}
	return true
}

// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token valid for one hour.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "message, token"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			if h.log != nil {
				h.log.Infow("login_failed", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "internal error", "login_failed", err, "username", input.Username)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
