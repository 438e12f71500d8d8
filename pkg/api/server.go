// Package api exposes the HTTP surface: job management, suggestions, prompt
// criteria and description edits, and health. All domain rules live in the
// service layer; handlers bind, delegate and map errors.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/database"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/services"
)

// Nudger requests an immediate reconciler pass after a user-triggered write.
type Nudger interface {
	Nudge()
}

// Server is the HTTP API server.
type Server struct {
	svc    *services.Services
	gates  *gates.Gates
	nudger Nudger
	cfg    *config.SchedulerConfig
	db     *database.Client

	httpSrv *http.Server
}

// NewServer creates the API server.
func NewServer(svc *services.Services, g *gates.Gates, nudger Nudger, cfg *config.SchedulerConfig, db *database.Client) *Server {
	return &Server{svc: svc, gates: g, nudger: nudger, cfg: cfg, db: db}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/projects", s.ListProjects)

		v1.GET("/projects/:projectID/jobs", s.ListJobs)
		v1.POST("/projects/:projectID/jobs", s.CreateJob)
		v1.GET("/jobs/:jobID", s.GetJob)
		v1.PATCH("/jobs/:jobID/cancel", s.CancelJob)
		v1.DELETE("/jobs/:jobID", s.DeleteJob)

		v1.GET("/projects/:projectID/suggestions", s.ListSuggestions)
		v1.POST("/suggestions/:suggestionID/accept", s.AcceptSuggestion)
		v1.POST("/suggestions/:suggestionID/dismiss", s.DismissSuggestion)
		v1.POST("/suggestions/:suggestionID/vote", s.VoteSuggestion)

		v1.GET("/projects/:projectID/prompts", s.ListPrompts)
		v1.GET("/prompts/:promptID", s.GetPrompt)
		v1.PUT("/prompts/:promptID/criteria", s.SetCriteria)
		v1.PUT("/prompts/:promptID/description", s.SetDescription)
	}
	return router
}

// Start begins serving on the given address. Blocks until Shutdown or error.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
