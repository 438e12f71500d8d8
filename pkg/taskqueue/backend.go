package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const taskKeyPrefix = "task:"

// ResultBackend persists task states in Redis with a TTL so that stale
// entries age out on their own.
type ResultBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultBackend creates a result backend over the given Redis client.
func NewResultBackend(client *redis.Client, ttl time.Duration) *ResultBackend {
	return &ResultBackend{client: client, ttl: ttl}
}

func taskKey(taskID string) string {
	return taskKeyPrefix + taskID
}

// SetState records the task's state, clearing any previous error/result.
func (b *ResultBackend) SetState(ctx context.Context, taskID string, state TaskState) error {
	key := taskKey(taskID)
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, key, "state", string(state))
	pipe.Expire(ctx, key, b.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set task state: %w", err)
	}
	return nil
}

// SetSuccess records SUCCESS with the result payload.
func (b *ResultBackend) SetSuccess(ctx context.Context, taskID string, result map[string]interface{}) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal task result: %w", err)
	}
	key := taskKey(taskID)
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, key, "state", string(StateSuccess), "result", string(payload))
	pipe.Expire(ctx, key, b.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set task success: %w", err)
	}
	return nil
}

// SetFailure records FAILURE with the error message.
func (b *ResultBackend) SetFailure(ctx context.Context, taskID string, taskErr string) error {
	key := taskKey(taskID)
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, key, "state", string(StateFailure), "error", taskErr)
	pipe.Expire(ctx, key, b.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set task failure: %w", err)
	}
	return nil
}

// Get returns the stored AsyncResult for the task id.
func (b *ResultBackend) Get(ctx context.Context, taskID string) (*AsyncResult, error) {
	fields, err := b.client.HGetAll(ctx, taskKey(taskID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read task state: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrTaskNotFound
	}

	res := &AsyncResult{
		TaskID: taskID,
		State:  TaskState(fields["state"]),
		Error:  fields["error"],
	}
	if raw, ok := fields["result"]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &res.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task result: %w", err)
		}
	}
	return res, nil
}

// CompareAndRevoke flips a still-pending task to REVOKED. Returns true when
// the task was revoked, false when it already started or finished.
var revokeScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], "state") == "PENDING" then
	redis.call("HSET", KEYS[1], "state", "REVOKED")
	return 1
end
return 0
`)

func (b *ResultBackend) CompareAndRevoke(ctx context.Context, taskID string) (bool, error) {
	n, err := revokeScript.Run(ctx, b.client, []string{taskKey(taskID)}).Int()
	if err != nil {
		return false, fmt.Errorf("failed to revoke task: %w", err)
	}
	return n == 1, nil
}
