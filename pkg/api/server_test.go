package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/gates"
	"github.com/promptlens/promptlens/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeNudger struct{ nudged int }

func (n *fakeNudger) Nudge() { n.nudged++ }

func newTestServer() (*Server, *fakeNudger) {
	n := &fakeNudger{}
	return NewServer(nil, nil, n, config.DefaultSchedulerConfig(), nil), n
}

func TestCreateJobRejectsMalformedBody(t *testing.T) {
	s, n := newTestServer()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "projectID", Value: "p1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/jobs",
		strings.NewReader("{not json"))

	s.CreateJob(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, n.nudged)
}

func TestCreateJobRejectsUnknownType(t *testing.T) {
	s, n := newTestServer()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "projectID", Value: "p1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/jobs",
		strings.NewReader(`{"type":"make_coffee"}`))

	s.CreateJob(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown job type")
	assert.Zero(t, n.nudged)
}

func TestVoteSuggestionRequiresVote(t *testing.T) {
	s, _ := newTestServer()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "suggestionID", Value: "sg1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/suggestions/sg1/vote",
		strings.NewReader(`{"feedback":"nice"}`))

	s.VoteSuggestion(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// gateSpanStore satisfies the discovery gate's traffic requirements.
type gateSpanStore struct{}

func (gateSpanStore) CountForProject(context.Context, string) (int, error) { return 25, nil }
func (gateSpanStore) ListUnmapped(context.Context, string) ([]*ent.Span, error) {
	return []*ent.Span{{Input: "Hello Ada, welcome!"}}, nil
}
func (gateSpanStore) ListUnscored(context.Context, string, int) ([]*ent.Span, error) {
	return nil, nil
}
func (gateSpanStore) CountScored(context.Context, string) (int, error) { return 0, nil }
func (gateSpanStore) HasActivitySince(context.Context, string, string, time.Time) (bool, error) {
	return false, nil
}
func (gateSpanStore) AdoptionRatio(context.Context, string, string, int) (float64, error) {
	return 0, nil
}

// inFlightJobStore reports a running job for every scope.
type inFlightJobStore struct{}

func (inFlightJobStore) HasInFlightForScope(context.Context, job.Type, string, *string) (bool, error) {
	return true, nil
}

func (inFlightJobStore) LastBacktestScoredCount(context.Context, string, string) (int, error) {
	return 0, nil
}

func TestCreateJobConflictsWhenScopeInProgress(t *testing.T) {
	n := &fakeNudger{}
	g := gates.New(gateSpanStore{}, inFlightJobStore{})
	s := NewServer(nil, g, n, config.DefaultSchedulerConfig(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "projectID", Value: "p1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects/p1/jobs",
		strings.NewReader(`{"type":"agent_discovery"}`))

	s.CreateJob(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already in progress")
	assert.Zero(t, n.nudged)
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrNotPending, http.StatusConflict},
		{services.ErrTooManyPending, http.StatusConflict},
		{services.ErrAlreadyInProgress, http.StatusConflict},
		{services.NewValidationError("vote", "must be -1, 0, or 1"), http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondServiceError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestUserIDDefaultsWhenHeaderMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	id := userID(c)
	require.NotNil(t, id)
	assert.Equal(t, "api", *id)

	c.Request.Header.Set("X-User-ID", "u-42")
	assert.Equal(t, "u-42", *userID(c))
}

func TestRouterRegistersRoutes(t *testing.T) {
	s, _ := newTestServer()
	routes := s.Router().Routes()

	paths := map[string]bool{}
	for _, r := range routes {
		paths[r.Method+" "+r.Path] = true
	}
	assert.True(t, paths["GET /health"])
	assert.True(t, paths["POST /api/v1/projects/:projectID/jobs"])
	assert.True(t, paths["PATCH /api/v1/jobs/:jobID/cancel"])
	assert.True(t, paths["POST /api/v1/suggestions/:suggestionID/accept"])
	assert.True(t, paths["PUT /api/v1/prompts/:promptID/criteria"])
}
