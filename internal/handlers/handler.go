package handlers

import (
	"net/http"

	"taskboard/internal/logger"
	"taskboard/internal/service"

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
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Service metadata and health endpoints
	router.GET("/", h.home)
	router.GET("/health", h.health)

	// Auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Task endpoints (protected)
	h.registerTaskRoutes(router)

	return router
}

func (h *Handler) registerTaskRoutes(r *gin.Engine) {
	tasks := r.Group("/tasks", h.userIdMiddleware)
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// @Summary      Service metadata
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Task API is running",
		"endpoints": gin.H{
			"register": "/register (POST)",
			"login":    "/login (POST)",
			"tasks":    "/tasks (GET, POST)",
			"task":     "/tasks/{id} (PUT, DELETE)",
		},
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
