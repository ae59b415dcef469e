package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/service"

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

	// Root and health endpoints
	router.GET("/", h.welcome)
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Owner-scoped expense endpoints (protected)
	h.registerExpenseRoutes(router)

	// Live summary feed, served on the same port behind the same token gate
	router.GET("/ws", h.userIDMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses", h.userIDMiddleware)
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/summary", h.getSummary)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// @Summary      API welcome
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Expense Tracker API!")
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeServiceError maps domain errors onto HTTP statuses and the {message}
// body every error response uses. Unknown errors are logged and reported as
// a generic 500 so nothing internal leaks.
func (h *Handler) writeServiceError(c *gin.Context, err error, logKey string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
