package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig bounds the retry layer.
type RetryConfig struct {
	// InitialBackoff is the first delay after a rate-limit error.
	InitialBackoff time.Duration
	// MaxBackoff caps the exponential growth.
	MaxBackoff time.Duration
	// CallDeadline is the wall-clock budget for one call including retries.
	CallDeadline time.Duration
}

// DefaultRetryConfig matches the worker contract: 1s initial, 60s cap,
// 300s per-call deadline.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     60 * time.Second,
		CallDeadline:   300 * time.Second,
	}
}

// RetryingGateway decorates a Gateway with the worker retry contract:
// rate-limit errors back off exponentially with jitter until the per-call
// deadline; any other error is retried exactly once.
type RetryingGateway struct {
	inner Gateway
	cfg   RetryConfig
}

// NewRetryingGateway wraps inner with retry behavior.
func NewRetryingGateway(inner Gateway, cfg RetryConfig) *RetryingGateway {
	return &RetryingGateway{inner: inner, cfg: cfg}
}

// CallLLM implements Gateway.
func (g *RetryingGateway) CallLLM(ctx context.Context, input CallInput) (*CallOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CallDeadline)
	defer cancel()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.cfg.InitialBackoff
	policy.MaxInterval = g.cfg.MaxBackoff
	policy.MaxElapsedTime = g.cfg.CallDeadline

	retriedOther := false
	var out *CallOutput

	operation := func() error {
		var err error
		out, err = g.inner.CallLLM(ctx, input)
		if err == nil {
			return nil
		}
		if IsRateLimit(err) {
			return err
		}
		// Non-rate-limit errors get exactly one retry.
		if retriedOther {
			return backoff.Permanent(err)
		}
		retriedOther = true
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}
	return out, nil
}
