package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/test/util"
)

// newServices spins up an isolated schema and returns the service bundle plus
// the raw client for fixture setup.
func newServices(t *testing.T) (*services.Services, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return services.New(client), client
}

func createProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("test project").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createTrace(t *testing.T, client *ent.Client, projectID string) *ent.Trace {
	t.Helper()
	tr, err := client.Trace.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		Save(context.Background())
	require.NoError(t, err)
	return tr
}

// createSpan inserts a span; customise the builder through fn.
func createSpan(t *testing.T, client *ent.Client, projectID, traceID string, fn func(*ent.SpanCreate)) *ent.Span {
	t.Helper()
	builder := client.Span.Create().
		SetID(uuid.New().String()).
		SetTraceID(traceID).
		SetProjectID(projectID).
		SetStartTimeUnixNano(0).
		SetEndTimeUnixNano(1_000_000_000).
		SetInput("Hello Ada, welcome!")
	if fn != nil {
		fn(builder)
	}
	sp, err := builder.Save(context.Background())
	require.NoError(t, err)
	return sp
}

func scored(score float64) map[string]interface{} {
	return map[string]interface{}{"correctness": score}
}

func strPtr(s string) *string { return &s }
