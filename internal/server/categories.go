package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type categoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// handleListCategories returns all of the user's categories with rollup
// counts.
func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// handleGetCategory returns one category.
func (s *Server) handleGetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, err := s.categories.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		s.respondNotFoundOr500(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// handleCreateCategory creates a category; a missing color is assigned
// from the palette.
func (s *Server) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	category, err := s.categories.Create(c.Request.Context(), currentUser(c), deref(req.Name), deref(req.Color))
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// handleUpdateCategory renames or recolors a category.
func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	category, err := s.categories.Update(c.Request.Context(), currentUser(c), id, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.respondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// handleDeleteCategory deletes a category and cascades to its tasks.
func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.categories.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		s.respondNotFoundOr500(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) respondNotFoundOr500(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.respondError(c, http.StatusNotFound, errors.New("not found"))
		return
	}
	s.respondError(c, http.StatusInternalServerError, err)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
