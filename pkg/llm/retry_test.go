package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway returns scripted responses in order.
type fakeGateway struct {
	calls     int
	responses []func() (*CallOutput, error)
}

func (f *fakeGateway) CallLLM(context.Context, CallInput) (*CallOutput, error) {
	idx := f.calls
	f.calls++
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx]()
}

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		CallDeadline:   time.Second,
	}
}

func TestRetrySucceedsFirstTry(t *testing.T) {
	inner := &fakeGateway{responses: []func() (*CallOutput, error){
		func() (*CallOutput, error) { return &CallOutput{Content: "ok"}, nil },
	}}
	g := NewRetryingGateway(inner, fastRetryConfig())

	out, err := g.CallLLM(context.Background(), CallInput{Model: "gpt-5-mini"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Content)
	assert.Equal(t, 1, inner.calls)
}

func TestRetryBacksOffOnRateLimit(t *testing.T) {
	inner := &fakeGateway{responses: []func() (*CallOutput, error){
		func() (*CallOutput, error) { return nil, &RateLimitError{Err: errors.New("429")} },
		func() (*CallOutput, error) { return nil, &RateLimitError{Err: errors.New("429")} },
		func() (*CallOutput, error) { return &CallOutput{Content: "ok"}, nil },
	}}
	g := NewRetryingGateway(inner, fastRetryConfig())

	out, err := g.CallLLM(context.Background(), CallInput{Model: "claude-sonnet-4-5"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Content)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryOtherErrorOnlyOnce(t *testing.T) {
	boom := errors.New("bad request")
	inner := &fakeGateway{responses: []func() (*CallOutput, error){
		func() (*CallOutput, error) { return nil, boom },
	}}
	g := NewRetryingGateway(inner, fastRetryConfig())

	_, err := g.CallLLM(context.Background(), CallInput{Model: "gpt-5-mini"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryOtherErrorSecondTrySucceeds(t *testing.T) {
	inner := &fakeGateway{responses: []func() (*CallOutput, error){
		func() (*CallOutput, error) { return nil, errors.New("flaky") },
		func() (*CallOutput, error) { return &CallOutput{Content: "ok"}, nil },
	}}
	g := NewRetryingGateway(inner, fastRetryConfig())

	out, err := g.CallLLM(context.Background(), CallInput{Model: "gpt-5-mini"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Content)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryDeadlineStopsRateLimitLoop(t *testing.T) {
	inner := &fakeGateway{responses: []func() (*CallOutput, error){
		func() (*CallOutput, error) { return nil, &RateLimitError{Err: errors.New("429")} },
	}}
	cfg := fastRetryConfig()
	cfg.CallDeadline = 20 * time.Millisecond
	g := NewRetryingGateway(inner, cfg)

	start := time.Now()
	_, err := g.CallLLM(context.Background(), CallInput{Model: "gpt-5-mini"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestIsRateLimit(t *testing.T) {
	base := &RateLimitError{Err: errors.New("429")}
	assert.True(t, IsRateLimit(base))
	assert.True(t, IsRateLimit(errors.Join(errors.New("wrap"), base)))
	assert.False(t, IsRateLimit(errors.New("500")))
}
