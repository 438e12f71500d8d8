package workers_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
	"github.com/promptlens/promptlens/pkg/workers"
	"github.com/promptlens/promptlens/test/util"
)

// fakeGateway scripts CallLLM per input text.
type fakeGateway struct {
	respond func(input llm.CallInput) (*llm.CallOutput, error)
	calls   int
}

func (g *fakeGateway) CallLLM(_ context.Context, input llm.CallInput) (*llm.CallOutput, error) {
	g.calls++
	return g.respond(input)
}

// recordingBroker captures fire-and-forget enqueues from handlers.
type recordingBroker struct {
	sent []string
}

func (b *recordingBroker) SendTask(_ context.Context, name string, _ map[string]interface{}) (string, error) {
	b.sent = append(b.sent, name)
	return uuid.New().String(), nil
}

func (b *recordingBroker) Result(context.Context, string) (*taskqueue.AsyncResult, error) {
	return nil, errors.New("not implemented")
}

func (b *recordingBroker) Revoke(context.Context, string) error { return nil }

// handlerMap collects handler registrations so tests can invoke them directly.
type handlerMap map[string]taskqueue.Handler

func (m handlerMap) Register(name string, h taskqueue.Handler) { m[name] = h }

// fakeLocker single-flights in-process; held simulates another holder.
type fakeLocker struct {
	held bool
}

func (l *fakeLocker) WithLock(ctx context.Context, _ string, _ time.Duration, fn func(context.Context) error) (bool, error) {
	if l.held {
		return false, nil
	}
	return true, fn(ctx)
}

type harness struct {
	svc      *services.Services
	client   *ent.Client
	broker   *recordingBroker
	gateway  *fakeGateway
	locker   *fakeLocker
	handlers handlerMap
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	svc := services.New(client)
	broker := &recordingBroker{}
	locker := &fakeLocker{}
	gw := &fakeGateway{respond: func(llm.CallInput) (*llm.CallOutput, error) {
		return &llm.CallOutput{Content: `{"correctness": 0.9}`}, nil
	}}
	factory := func() (llm.Gateway, func()) { return gw, func() {} }

	runner := workers.NewRunner(svc, config.DefaultWorkerConfig(), factory, broker, locker)
	handlers := handlerMap{}
	runner.Register(handlers, 0)

	return &harness{svc: svc, client: client, broker: broker, gateway: gw, locker: locker, handlers: handlers}
}

func (h *harness) run(t *testing.T, taskName, jobID string) map[string]interface{} {
	t.Helper()
	handler, ok := h.handlers[taskName]
	require.True(t, ok, "no handler for %s", taskName)
	out, err := handler(context.Background(), &taskqueue.Task{
		ID:     uuid.New().String(),
		Name:   taskName,
		Params: map[string]interface{}{tasks.ParamJobID: jobID},
	})
	require.NoError(t, err)
	return out
}

func (h *harness) newProject(t *testing.T) *ent.Project {
	t.Helper()
	p, err := h.client.Project.Create().
		SetID(uuid.New().String()).
		SetName("test project").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func (h *harness) newSpan(t *testing.T, projectID, traceID, input string, fn func(*ent.SpanCreate)) *ent.Span {
	t.Helper()
	builder := h.client.Span.Create().
		SetID(uuid.New().String()).
		SetTraceID(traceID).
		SetProjectID(projectID).
		SetStartTimeUnixNano(0).
		SetEndTimeUnixNano(1_000_000_000).
		SetInput(input)
	if fn != nil {
		fn(builder)
	}
	sp, err := builder.Save(context.Background())
	require.NoError(t, err)
	return sp
}

func (h *harness) newTrace(t *testing.T, projectID string) *ent.Trace {
	t.Helper()
	tr, err := h.client.Trace.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		Save(context.Background())
	require.NoError(t, err)
	return tr
}

func TestDiscoveryExtractsOneTemplateAndMapsAllSpans(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	tr := h.newTrace(t, p.ID)

	for i := 0; i < 12; i++ {
		h.newSpan(t, p.ID, tr.ID, fmt.Sprintf("Hello name%d, welcome!", i), nil)
	}

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)

	out := h.run(t, tasks.RunAgentDiscovery, j.ID)
	assert.Equal(t, 1, out["new_templates"])
	assert.Equal(t, 12, out["mapped"])

	done, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, done.Status)

	prompts, err := h.svc.Prompts.LatestVersions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Hello {var_0}, welcome!", prompts[0].Content)
	assert.Equal(t, 1, prompts[0].Version)

	unmapped, err := h.svc.Spans.ListUnmapped(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, unmapped)

	// Each new prompt enqueues its criteria and description generators.
	assert.ElementsMatch(t, []string{tasks.GenerateCriteria, tasks.GenerateInitialDescription}, h.broker.sent)
}

func TestDiscoveryReusesExistingTemplate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	tr := h.newTrace(t, p.ID)

	existing, err := h.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)

	h.newSpan(t, p.ID, tr.ID, "Hello Grace, welcome!", nil)

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)

	out := h.run(t, tasks.RunAgentDiscovery, j.ID)
	assert.Equal(t, 0, out["new_templates"])
	assert.Equal(t, 1, out["mapped"])
	assert.Empty(t, h.broker.sent)

	spans, err := h.client.Span.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	require.NotNil(t, spans[0].PromptID)
	assert.Equal(t, existing.ID, *spans[0].PromptID)
	assert.Equal(t, "Grace", spans[0].InputParams["var_0"])
}

func TestScoringPartialSuccess(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	tr := h.newTrace(t, p.ID)
	slug := "greeter"

	prompt, err := h.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      slug,
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)
	require.NoError(t, h.svc.Prompts.SetCriteria(ctx, prompt.ID, map[string]interface{}{
		"correctness": []interface{}{"Must be accurate"},
	}))

	for i := 0; i < 10; i++ {
		h.newSpan(t, p.ID, tr.ID, fmt.Sprintf("Hello name%d, welcome!", i), func(b *ent.SpanCreate) {
			b.SetPromptID(prompt.ID)
		})
	}
	for i := 0; i < 2; i++ {
		h.newSpan(t, p.ID, tr.ID, fmt.Sprintf("Hello FAILME%d, welcome!", i), func(b *ent.SpanCreate) {
			b.SetPromptID(prompt.ID)
		})
	}

	// Two calls hit a non-rate-limit provider error.
	h.gateway.respond = func(input llm.CallInput) (*llm.CallOutput, error) {
		if strings.Contains(input.InputText, "FAILME") {
			return nil, errors.New("provider exploded")
		}
		return &llm.CallOutput{Content: `{"correctness": 0.9}`}, nil
	}

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeJudgeScoring,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)

	out := h.run(t, tasks.EvaluatePromptSpans, j.ID)
	assert.Equal(t, 10, out["spans_evaluated"])
	assert.Equal(t, 2, out["spans_failed"])
	assert.Len(t, out["span_errors"], 2)

	done, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPartiallyCompleted, done.Status)

	scored, err := h.svc.Spans.CountScored(ctx, prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, scored)
}

func TestScoringExplicitSpanIDs(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	tr := h.newTrace(t, p.ID)

	prompt, err := h.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)

	target := h.newSpan(t, p.ID, tr.ID, "Hello Ada, welcome!", func(b *ent.SpanCreate) {
		b.SetPromptID(prompt.ID)
	})
	// A second mapped span that must stay untouched.
	other := h.newSpan(t, p.ID, tr.ID, "Hello Bob, welcome!", func(b *ent.SpanCreate) {
		b.SetPromptID(prompt.ID)
	})

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeJudgeScoring,
		ProjectID:  p.ID,
		Parameters: map[string]interface{}{tasks.ParamSpanIDs: []string{target.ID}},
	})
	require.NoError(t, err)

	handler := h.handlers[tasks.EvaluateSpans]
	require.NotNil(t, handler)
	out, err := handler(ctx, &taskqueue.Task{
		ID:   uuid.New().String(),
		Name: tasks.EvaluateSpans,
		Params: map[string]interface{}{
			tasks.ParamJobID:   j.ID,
			tasks.ParamSpanIDs: []string{target.ID},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out["spans_evaluated"])

	fs, err := models.FeedbackScoreFromMap(mustGetSpan(t, h, target.ID).FeedbackScore)
	require.NoError(t, err)
	require.NotNil(t, fs.Correctness)
	assert.InDelta(t, 0.9, *fs.Correctness, 1e-9)

	fs, err = models.FeedbackScoreFromMap(mustGetSpan(t, h, other.ID).FeedbackScore)
	require.NoError(t, err)
	assert.Nil(t, fs.Correctness)
}

func TestHandlerSkipsCancelledJob(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:      job.TypeAgentDiscovery,
		ProjectID: p.ID,
	})
	require.NoError(t, err)
	require.NoError(t, h.svc.Jobs.CancelPending(ctx, j.ID))

	out := h.run(t, tasks.RunAgentDiscovery, j.ID)
	assert.Contains(t, out[models.ResultReason], "cancelled")

	reloaded, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, reloaded.Status)
}

// tuningGateway scripts the four call shapes a tuning run makes: replay
// (messages), judge (structured response format), suggestion and candidate
// generation (plain text).
func tuningGateway(judgeScore float64, candidate string) func(llm.CallInput) (*llm.CallOutput, error) {
	return func(input llm.CallInput) (*llm.CallOutput, error) {
		switch {
		case len(input.Messages) > 0:
			return &llm.CallOutput{
				Content: "Welcome aboard, glad to have you.",
				Stats:   llm.CallStats{ResponseMS: 100, ResponseCost: 0.001, PromptTokens: 10, CompletionTokens: 5},
			}, nil
		case input.ResponseFormat != nil:
			return &llm.CallOutput{Content: fmt.Sprintf(`{"correctness": %g}`, judgeScore)}, nil
		case strings.Contains(input.InputText, "weaknesses"):
			return &llm.CallOutput{Content: "Greet the user by name and state the next step."}, nil
		default:
			return &llm.CallOutput{Content: candidate}, nil
		}
	}
}

func (h *harness) newScoredPrompt(t *testing.T, projectID, slug string, spanCount int, score float64) *ent.Prompt {
	t.Helper()
	ctx := context.Background()
	tr := h.newTrace(t, projectID)

	prompt, err := h.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: projectID,
		Slug:      slug,
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)
	require.NoError(t, h.svc.Prompts.SetCriteria(ctx, prompt.ID, map[string]interface{}{
		"correctness": []interface{}{"Must be accurate"},
	}))

	for i := 0; i < spanCount; i++ {
		sp := h.newSpan(t, projectID, tr.ID, fmt.Sprintf("Hello name%d, welcome!", i), func(b *ent.SpanCreate) {
			b.SetPromptID(prompt.ID)
			b.SetMetadataAttributes(map[string]interface{}{
				models.MetaModel: "gpt-4o-mini",
				models.MetaCost:  0.01,
			})
		})
		require.NoError(t, h.svc.Spans.SetCorrectness(ctx, sp.ID, score, nil))
	}
	return prompt
}

func TestTuningNoImprovementAdvancesLadder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	slug := "greeter"
	prompt := h.newScoredPrompt(t, p.ID, slug, 4, 0.3)

	// The candidate's replays judge below the originals.
	h.gateway.respond = tuningGateway(0.2, "Hello {var_0}, welcome aboard!")

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypePromptTuning,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)

	out := h.run(t, tasks.ImproveSinglePrompt, j.ID)
	assert.Equal(t, "no_improvement", out[models.ResultStatusDetail])
	assert.Equal(t, 4, out["replayed"])

	done, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, done.Status)

	// No new version, no suggestion.
	prompts, err := h.svc.Prompts.LatestVersions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, 1, prompts[0].Version)

	suggestions, err := h.svc.Suggestions.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	// The ladder still advances so the gate re-arms at the next threshold.
	reloaded, err := h.svc.Prompts.Get(ctx, prompt.ID)
	require.NoError(t, err)
	meta, err := models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 4, meta.LastImprovementSpanCount)
}

func TestTuningImprovementCreatesVersionAndSuggestion(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	slug := "greeter"
	candidate := "Hello {var_0}, welcome aboard!"
	prompt := h.newScoredPrompt(t, p.ID, slug, 4, 0.3)

	h.gateway.respond = tuningGateway(0.9, candidate)

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypePromptTuning,
		ProjectID:  p.ID,
		PromptSlug: &slug,
	})
	require.NoError(t, err)

	out := h.run(t, tasks.ImproveSinglePrompt, j.ID)
	assert.Equal(t, 2, out["new_version"])
	assert.InDelta(t, 0.3, out["avg_score_old"].(float64), 1e-9)
	assert.InDelta(t, 0.9, out["avg_score_new"].(float64), 1e-9)

	done, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, done.Status)

	// The improved version exists but stays inactive until a human accepts.
	v2, err := h.svc.Prompts.GetVersion(ctx, p.ID, slug, 2)
	require.NoError(t, err)
	assert.Equal(t, candidate, v2.Content)
	assert.False(t, v2.IsActive)

	suggestions, err := h.svc.Suggestions.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	sug := suggestions[0]
	assert.Equal(t, "pending", string(sug.Status))
	require.NotNil(t, sug.NewPromptVersion)
	assert.Equal(t, 2, *sug.NewPromptVersion)
	require.NotNil(t, sug.NewPromptText)
	assert.Equal(t, candidate, *sug.NewPromptText)
	assert.InDelta(t, 0.3, sug.Scores[models.ScoresAvgScoreOld].(float64), 1e-9)
	assert.InDelta(t, 0.9, sug.Scores[models.ScoresAvgScoreNew].(float64), 1e-9)

	reloaded, err := h.svc.Prompts.Get(ctx, prompt.ID)
	require.NoError(t, err)
	meta, err := models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 4, meta.LastImprovementSpanCount)
}

func TestBacktestRecommendsSwitch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	slug := "greeter"
	prompt := h.newScoredPrompt(t, p.ID, slug, 4, 0.5)

	// The candidate model scores higher, runs faster and costs less than the
	// observed baseline.
	h.gateway.respond = tuningGateway(0.9, "")

	j, err := h.svc.Jobs.Create(ctx, services.CreateJobInput{
		Type:       job.TypeModelBacktesting,
		ProjectID:  p.ID,
		PromptSlug: &slug,
		Parameters: map[string]interface{}{
			tasks.ParamModels:    []string{"claude-haiku-4-5"},
			tasks.ParamSpanCount: 50,
		},
	})
	require.NoError(t, err)

	// The reconciler flattens job parameters into the task params on
	// dispatch; invoking the handler directly does the same here.
	handler, ok := h.handlers[tasks.RunModelBacktesting]
	require.True(t, ok)
	out, err := handler(ctx, &taskqueue.Task{
		ID:   uuid.New().String(),
		Name: tasks.RunModelBacktesting,
		Params: map[string]interface{}{
			tasks.ParamJobID:     j.ID,
			tasks.ParamModels:    []string{"claude-haiku-4-5"},
			tasks.ParamSpanCount: 50,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", out["current_model"])
	assert.Equal(t, 4, out["sample_size"])
	assert.Equal(t, 4, out["success_count"])
	rec, ok := out["recommendation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "switch_recommended", rec["verdict"])
	assert.Equal(t, "claude-haiku-4-5", rec["recommended_model"])

	done, err := h.svc.Jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, done.Status)

	run, err := h.svc.Backtests.LatestRun(ctx, prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(run.Status))

	// Every replay persisted as a synthetic span tagged with the run.
	synthetic, err := h.svc.Spans.ListForBacktestRun(ctx, p.ID, run.ID)
	require.NoError(t, err)
	require.Len(t, synthetic, 4)
	for _, sp := range synthetic {
		assert.Equal(t, "backtest:claude-haiku-4-5", sp.Operation)
	}

	suggestions, err := h.svc.Suggestions.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	sug := suggestions[0]
	assert.Equal(t, "pending", string(sug.Status))
	assert.Equal(t, "claude-haiku-4-5", sug.Scores[models.ScoresRecommendedModel])
	assert.Equal(t, "switch_recommended", sug.Recommendations["verdict"])
}

func TestReviewTriggersRunUnderLock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.newProject(t)
	tr := h.newTrace(t, p.ID)

	prompt, err := h.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		h.newSpan(t, p.ID, tr.ID, fmt.Sprintf("Hello name%d, welcome!", i), func(b *ent.SpanCreate) {
			b.SetPromptID(prompt.ID)
		})
	}

	handler, ok := h.handlers[tasks.CheckReviewTriggers]
	require.True(t, ok)

	out, err := handler(ctx, &taskqueue.Task{ID: uuid.New().String(), Name: tasks.CheckReviewTriggers})
	require.NoError(t, err)
	assert.Equal(t, 1, out["prompts_checked"])
	assert.Equal(t, 1, out["reviews_due"])

	// A concurrent holder short-circuits the whole pass.
	h.locker.held = true
	out, err = handler(ctx, &taskqueue.Task{ID: uuid.New().String(), Name: tasks.CheckReviewTriggers})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "skipped"}, out)
}

func mustGetSpan(t *testing.T, h *harness, id string) *ent.Span {
	t.Helper()
	sp, err := h.svc.Spans.Get(context.Background(), id)
	require.NoError(t, err)
	return sp
}
