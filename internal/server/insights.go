package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleInsights returns the dashboard report for the authenticated user.
func (s *Server) handleInsights(c *gin.Context) {
	report, err := s.insights.Report(c.Request.Context(), currentUser(c), s.now())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
