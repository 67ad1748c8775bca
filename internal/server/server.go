// Package server exposes the TaskFlow HTTP API over gin. Every handler is
// scoped to the authenticated user; auth failures always answer 401 so
// clients can tear their session down.
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

const userKey = "taskflow.user"

// Server provides the HTTP handlers for the TaskFlow backend.
type Server struct {
	engine     *gin.Engine
	auth       *service.AuthService
	categories *service.CategoryService
	tasks      *service.TaskService
	insights   *service.InsightService
	logger     *slog.Logger
	now        func() time.Time
}

// New constructs the HTTP server with routes and middleware configured.
func New(auth *service.AuthService, categories *service.CategoryService, tasks *service.TaskService, insights *service.InsightService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:     router,
		auth:       auth,
		categories: categories,
		tasks:      tasks,
		insights:   insights,
		logger:     logger,
		now:        time.Now,
	}

	router.Use(srv.requestLog())
	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires the API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		users := api.Group("/users")
		{
			users.POST("/register", s.handleRegister)
			users.POST("/token", s.handleToken)
			users.GET("/me", s.requireUser(), s.handleMe)
		}

		authed := api.Group("", s.requireUser())
		{
			authed.GET("/categories", s.handleListCategories)
			authed.POST("/categories", s.handleCreateCategory)
			authed.GET("/categories/:id", s.handleGetCategory)
			authed.PUT("/categories/:id", s.handleUpdateCategory)
			authed.DELETE("/categories/:id", s.handleDeleteCategory)

			authed.GET("/tasks", s.handleListTasks)
			authed.POST("/tasks", s.handleCreateTask)
			authed.PUT("/tasks/:id", s.handleUpdateTask)
			authed.PATCH("/tasks/:id/status", s.handleUpdateTaskStatus)
			authed.DELETE("/tasks/:id", s.handleDeleteTask)

			authed.GET("/insights", s.handleInsights)
		}
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLog emits one line per request, tagged with the caller's request
// ID when present.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// requireUser resolves the bearer token to a user or rejects with 401.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		user, err := s.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the user injected by requireUser.
func currentUser(c *gin.Context) *model.User {
	return c.MustGet(userKey).(*model.User)
}

// parseID converts a path parameter to uint with error handling.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return uint(id), true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
