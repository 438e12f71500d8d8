// Package taskqueue provides the named-task broker: tasks are registered and
// dispatched by stable string names, executed by a bounded in-process worker
// pool, with terminal state tracked in a Redis result backend so any process
// can poll a task id for liveness.
package taskqueue

import (
	"context"
	"errors"
)

// TaskState is the broker-side state of a dispatched task.
type TaskState string

// Broker task states. Pending/Started/Retry are live; the rest are terminal.
const (
	StatePending TaskState = "PENDING"
	StateStarted TaskState = "STARTED"
	StateRetry   TaskState = "RETRY"
	StateSuccess TaskState = "SUCCESS"
	StateFailure TaskState = "FAILURE"
	StateRevoked TaskState = "REVOKED"
)

// IsLive reports whether the task may still execute.
func (s TaskState) IsLive() bool {
	return s == StatePending || s == StateStarted || s == StateRetry
}

// IsTerminal reports whether the task has finished for good.
func (s TaskState) IsTerminal() bool {
	return s == StateSuccess || s == StateFailure || s == StateRevoked
}

// Sentinel errors for broker operations.
var (
	// ErrTaskNotFound indicates the result backend has no record of the task id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnknownTask indicates a dispatch for a name with no registered handler.
	ErrUnknownTask = errors.New("unknown task name")

	// ErrQueueClosed indicates the broker is shutting down.
	ErrQueueClosed = errors.New("task queue closed")
)

// Handler executes one task. The returned map becomes the task's result
// payload; a non-nil error marks the task FAILURE.
type Handler func(ctx context.Context, task *Task) (map[string]interface{}, error)

// Task is the unit handed to a Handler.
type Task struct {
	ID     string
	Name   string
	Params map[string]interface{}
}

// AsyncResult is the broker-side view of a dispatched task.
type AsyncResult struct {
	TaskID string
	State  TaskState
	Result map[string]interface{}
	Error  string
}

// Broker dispatches named tasks and exposes their result state.
type Broker interface {
	// SendTask enqueues the named task and returns its task id.
	SendTask(ctx context.Context, name string, params map[string]interface{}) (string, error)

	// Result returns the current state of a previously dispatched task.
	Result(ctx context.Context, taskID string) (*AsyncResult, error)

	// Revoke prevents a still-pending task from executing.
	Revoke(ctx context.Context, taskID string) error
}
