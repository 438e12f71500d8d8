package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCriteriaRequest is the body of PUT /prompts/:promptID/criteria.
type SetCriteriaRequest struct {
	Correctness []string `json:"correctness" binding:"required"`
}

// SetDescriptionRequest is the body of PUT /prompts/:promptID/description.
type SetDescriptionRequest struct {
	Description string  `json:"description" binding:"required"`
	Feedback    *string `json:"feedback"`
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.svc.Projects.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ListPrompts handles GET /projects/:projectID/prompts, returning the latest
// version of every slug.
func (s *Server) ListPrompts(c *gin.Context) {
	prompts, err := s.svc.Prompts.LatestVersions(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": prompts})
}

// GetPrompt handles GET /prompts/:promptID (composite id).
func (s *Server) GetPrompt(c *gin.Context) {
	p, err := s.svc.Prompts.Get(c.Request.Context(), c.Param("promptID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetCriteria handles PUT /prompts/:promptID/criteria. A user edit rolls the
// improvement ladder back one rung and flags existing scores stale, so the
// next scoring and tuning passes pick the new criteria up immediately.
func (s *Server) SetCriteria(c *gin.Context) {
	var req SetCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	criteria := map[string]interface{}{"correctness": req.Correctness}
	if err := s.svc.Prompts.SetEvaluationCriteria(c.Request.Context(), c.Param("promptID"), criteria); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetDescription handles PUT /prompts/:promptID/description. Applies the same
// ladder rollback as a criteria edit.
func (s *Server) SetDescription(c *gin.Context) {
	var req SetDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.svc.Prompts.EditAgentDescription(c.Request.Context(), c.Param("promptID"), req.Description, req.Feedback); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
