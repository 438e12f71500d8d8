package taskqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// InProcessBroker executes registered tasks on a bounded pool of worker
// goroutines within this process. Task state lives in the Redis result
// backend, so other processes (and the reconciler) can poll task ids without
// sharing memory with the broker.
type InProcessBroker struct {
	backend *ResultBackend
	queue   chan *Task

	mu       sync.RWMutex
	handlers map[string]Handler

	workers  int
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewInProcessBroker creates a broker with the given worker count and queue
// capacity.
func NewInProcessBroker(backend *ResultBackend, workers, queueSize int) *InProcessBroker {
	return &InProcessBroker{
		backend:  backend,
		queue:    make(chan *Task, queueSize),
		handlers: make(map[string]Handler),
		workers:  workers,
		stopCh:   make(chan struct{}),
	}
}

// Register binds a handler to a task name. Registering a duplicate name
// replaces the previous handler.
func (b *InProcessBroker) Register(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = handler
}

// RegisteredTasks returns the currently registered task names.
func (b *InProcessBroker) RegisteredTasks() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	return names
}

// Start spawns the worker goroutines. Safe to call once.
func (b *InProcessBroker) Start(ctx context.Context) {
	if b.started {
		slog.Warn("Broker already started, ignoring duplicate Start call")
		return
	}
	b.started = true

	slog.Info("Starting task broker", "workers", b.workers)
	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.run(ctx, i)
	}
}

// Stop drains in-flight tasks and shuts the pool down. Safe to call multiple
// times.
func (b *InProcessBroker) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
	b.wg.Wait()
	slog.Info("Task broker stopped")
}

// SendTask enqueues the named task and returns its task id. The task starts
// in PENDING and moves to STARTED when a worker picks it up.
func (b *InProcessBroker) SendTask(ctx context.Context, name string, params map[string]interface{}) (string, error) {
	b.mu.RLock()
	_, known := b.handlers[name]
	b.mu.RUnlock()
	if !known {
		return "", fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}

	task := &Task{
		ID:     uuid.New().String(),
		Name:   name,
		Params: params,
	}

	if err := b.backend.SetState(ctx, task.ID, StatePending); err != nil {
		return "", err
	}

	select {
	case b.queue <- task:
		return task.ID, nil
	case <-b.stopCh:
		return "", ErrQueueClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Result returns the backend state of a dispatched task.
func (b *InProcessBroker) Result(ctx context.Context, taskID string) (*AsyncResult, error) {
	return b.backend.Get(ctx, taskID)
}

// Revoke prevents a still-pending task from executing. Started tasks are not
// interrupted.
func (b *InProcessBroker) Revoke(ctx context.Context, taskID string) error {
	_, err := b.backend.CompareAndRevoke(ctx, taskID)
	return err
}

// run is the worker loop: claim a task, flip it STARTED, execute, record the
// terminal state.
func (b *InProcessBroker) run(ctx context.Context, workerIndex int) {
	defer b.wg.Done()

	log := slog.With("broker_worker", workerIndex)
	for {
		select {
		case <-b.stopCh:
			return
		case <-ctx.Done():
			return
		case task := <-b.queue:
			b.execute(ctx, log, task)
		}
	}
}

func (b *InProcessBroker) execute(ctx context.Context, log *slog.Logger, task *Task) {
	// A revoked task must never run.
	current, err := b.backend.Get(ctx, task.ID)
	if err == nil && current.State == StateRevoked {
		log.Debug("Skipping revoked task", "task_id", task.ID, "task", task.Name)
		return
	}

	if err := b.backend.SetState(ctx, task.ID, StateStarted); err != nil {
		log.Warn("Failed to mark task started", "task_id", task.ID, "error", err)
	}

	b.mu.RLock()
	handler := b.handlers[task.Name]
	b.mu.RUnlock()
	if handler == nil {
		_ = b.backend.SetFailure(ctx, task.ID, fmt.Sprintf("no handler for task %s", task.Name))
		return
	}

	result, err := safeInvoke(ctx, handler, task)
	if err != nil {
		log.Error("Task failed", "task", task.Name, "task_id", task.ID, "error", err)
		if berr := b.backend.SetFailure(ctx, task.ID, err.Error()); berr != nil {
			log.Warn("Failed to record task failure", "task_id", task.ID, "error", berr)
		}
		return
	}

	if berr := b.backend.SetSuccess(ctx, task.ID, result); berr != nil {
		log.Warn("Failed to record task success", "task_id", task.ID, "error", berr)
	}
}

// safeInvoke converts handler panics into errors so a misbehaving handler
// takes down its task, not the worker pool.
func safeInvoke(ctx context.Context, handler Handler, task *Task) (result map[string]interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return handler(ctx, task)
}
