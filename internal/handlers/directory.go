package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errListDepartments = "failed to load departments"
	errListUsers       = "failed to load users"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List departments
// @Tags         directory
// @Produce      json
// @Success      200  {array}   models.Department
// @Failure      500  {object}  map[string]string
// @Router       /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	ctx := c.Request.Context()
	depts, err := h.services.ListDepartments(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListDepartments, "departments_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// @Summary      List users by department
// @Tags         directory
// @Produce      json
// @Param        departmentId  path  int  true  "Department ID"
// @Success      200  {array}   models.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{departmentId} [get]
func (h *Handler) listUsersByDepartment(c *gin.Context) {
	departmentID, err := strconv.Atoi(c.Param("departmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid department id"})
		return
	}

	ctx := c.Request.Context()
	users, err := h.services.ListUsersByDepartment(ctx, departmentID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsers, "users_list_failed", err, "department_id", departmentID)
		return
	}
	c.JSON(http.StatusOK, users)
}
