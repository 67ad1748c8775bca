package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type taskRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *model.Status   `json:"status"`
	Priority    *model.Priority `json:"priority"`
	CategoryID  *uint           `json:"category_id"`
	DueDate     *time.Time      `json:"due_date"`
}

// handleListTasks fetches the user's tasks, optionally filtered by
// ?category_id=.
func (s *Server) handleListTasks(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			s.respondError(c, http.StatusBadRequest, errors.New("invalid category_id"))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	tasks, err := s.tasks.List(c.Request.Context(), currentUser(c), categoryID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// handleCreateTask inserts a new task.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	input := service.TaskInput{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		input.Status = *req.Status
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.CategoryID != nil {
		input.CategoryID = *req.CategoryID
	}

	task, err := s.tasks.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// handleUpdateTask applies a partial update to a task.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), currentUser(c), id, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		s.respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleUpdateTaskStatus moves a task between board columns.
func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status model.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := s.tasks.SetStatus(c.Request.Context(), currentUser(c), id, req.Status)
	if err != nil {
		s.respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := s.tasks.Get(c.Request.Context(), currentUser(c), id); err != nil {
		s.respondNotFoundOr500(c, err)
		return
	}
	if err := s.tasks.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) respondTaskError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.respondError(c, http.StatusNotFound, errors.New("task not found"))
		return
	}
	s.respondError(c, http.StatusBadRequest, err)
}
