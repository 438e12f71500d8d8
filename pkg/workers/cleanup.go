package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/promptlens/promptlens/pkg/taskqueue"
)

// cleanupHandler deletes old terminal system-triggered jobs. Runs daily; not
// backed by a job row of its own.
func (r *Runner) cleanupHandler(retention time.Duration) taskqueue.Handler {
	return func(ctx context.Context, _ *taskqueue.Task) (map[string]interface{}, error) {
		deleted, err := r.svc.Jobs.CleanupOld(ctx, retention)
		if err != nil {
			return nil, err
		}
		if deleted > 0 {
			slog.Info("Cleaned up old jobs", "deleted", deleted)
		}
		return map[string]interface{}{"deleted": deleted}, nil
	}
}
