package handlers

import (
	"employee_portal/internal/logger"
	"employee_portal/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public API surface
	router.POST("/login", h.login)
	router.GET("/departments", h.listDepartments)
	router.GET("/users/:departmentId", h.listUsersByDepartment)
	router.POST("/leave-request", h.leaveRequest)

	// Audit trail (protected)
	api := router.Group("/api/v1", h.userIdMiddleware)
	{
		api.GET("/leave-events", h.getLeaveEvents)
	}

	// Live leave-event feed over WebSocket, served on the same port
	router.GET("/ws", h.wsConnect)

	return router
}
