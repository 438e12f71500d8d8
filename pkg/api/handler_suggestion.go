package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VoteRequest is the body of POST /suggestions/:suggestionID/vote.
type VoteRequest struct {
	Vote     *int    `json:"vote" binding:"required"`
	Feedback *string `json:"feedback"`
}

// ListSuggestions handles GET /projects/:projectID/suggestions.
func (s *Server) ListSuggestions(c *gin.Context) {
	out, err := s.svc.Suggestions.ListByProject(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": out})
}

// AcceptSuggestion handles POST /suggestions/:suggestionID/accept. For
// prompt-version suggestions this activates the proposed version; accepting
// twice is a no-op.
func (s *Server) AcceptSuggestion(c *gin.Context) {
	sg, err := s.svc.Suggestions.Accept(c.Request.Context(), c.Param("suggestionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}

// DismissSuggestion handles POST /suggestions/:suggestionID/dismiss.
func (s *Server) DismissSuggestion(c *gin.Context) {
	sg, err := s.svc.Suggestions.Dismiss(c.Request.Context(), c.Param("suggestionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}

// VoteSuggestion handles POST /suggestions/:suggestionID/vote.
func (s *Server) VoteSuggestion(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sg, err := s.svc.Suggestions.Vote(c.Request.Context(), c.Param("suggestionID"), *req.Vote, req.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}
