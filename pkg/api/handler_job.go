package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/tasks"
)

// CreateJobRequest is the body of POST /projects/:projectID/jobs.
type CreateJobRequest struct {
	Type       string   `json:"type" binding:"required"`
	PromptSlug *string  `json:"prompt_slug"`
	SpanIDs    []string `json:"span_ids"`
	Models     []string `json:"models"`
}

// ListJobs handles GET /projects/:projectID/jobs.
func (s *Server) ListJobs(c *gin.Context) {
	jobs, err := s.svc.Jobs.ListByProject(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob handles GET /jobs/:jobID.
func (s *Server) GetJob(c *gin.Context) {
	j, err := s.svc.Jobs.Get(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// CreateJob handles POST /projects/:projectID/jobs. User-triggered creation
// runs the same eligibility gate as the scheduler, except for explicit
// span-list scoring jobs, which carry their own scope. On success a pending
// system job with the same scope is superseded and the reconciler is nudged.
func (s *Server) CreateJob(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("projectID")

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	jobType := job.Type(req.Type)
	if err := job.TypeValidator(jobType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job type: " + req.Type})
		return
	}

	in := services.CreateJobInput{
		Type:              jobType,
		ProjectID:         projectID,
		PromptSlug:        req.PromptSlug,
		TriggeredByUserID: userID(c),
		Parameters:        map[string]interface{}{},
	}

	explicitSpans := jobType == job.TypeJudgeScoring && len(req.SpanIDs) > 0
	if explicitSpans {
		// The span list defines its own scope; skip both gate and the
		// per-(project, slug) uniqueness it implies.
		in.Parameters[tasks.ParamSpanIDs] = req.SpanIDs
	} else {
		res, err := s.checkGate(c, jobType, projectID, req.PromptSlug)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if !res.Eligible {
			if gates.InProgress(res.Reason) {
				respondServiceError(c, services.ErrAlreadyInProgress)
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.Reason})
			return
		}
		in.ValidationStats = res.Stats
	}

	if jobType == job.TypeModelBacktesting {
		candidates := req.Models
		if len(candidates) == 0 {
			candidates = s.cfg.BacktestCandidateModels
		}
		in.Parameters[tasks.ParamModels] = candidates
		in.Parameters[tasks.ParamSpanCount] = config.MaxSpansForBacktesting
	}

	created, err := s.svc.Jobs.Create(ctx, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.nudger.Nudge()
	c.JSON(http.StatusCreated, created)
}

// CancelJob handles PATCH /jobs/:jobID/cancel. Only pending jobs cancel.
func (s *Server) CancelJob(c *gin.Context) {
	if err := s.svc.Jobs.CancelPending(c.Request.Context(), c.Param("jobID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// DeleteJob handles DELETE /jobs/:jobID. Only pending jobs may be deleted.
func (s *Server) DeleteJob(c *gin.Context) {
	if err := s.svc.Jobs.DeletePending(c.Request.Context(), c.Param("jobID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// checkGate evaluates the job type's eligibility gate for the request scope.
func (s *Server) checkGate(c *gin.Context, t job.Type, projectID string, slug *string) (gates.Result, error) {
	ctx := c.Request.Context()
	if t == job.TypeAgentDiscovery {
		return s.gates.Discovery(ctx, projectID)
	}
	if slug == nil {
		return gates.Result{}, services.NewValidationError("prompt_slug", "required for this job type")
	}
	p, err := s.svc.Prompts.GetLatest(ctx, projectID, *slug)
	if err != nil {
		return gates.Result{}, err
	}
	return s.gates.ForType(ctx, t, projectID, p)
}

// userID resolves the acting user from the request. Every job created here is
// user-triggered; absent identity it falls back to a fixed marker.
func userID(c *gin.Context) *string {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		id = "api"
	}
	return &id
}
