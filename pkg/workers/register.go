package workers

import (
	"time"

	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
)

// Registrar binds handlers to task names.
type Registrar interface {
	Register(name string, handler taskqueue.Handler)
}

// Register binds every worker handler to its stable task name.
func (r *Runner) Register(reg Registrar, jobRetention time.Duration) {
	// Job-row-backed handlers run under the shared lifecycle contract.
	reg.Register(tasks.RunAgentDiscovery, r.wrap(r.runDiscovery))
	reg.Register(tasks.EvaluatePromptSpans, r.wrap(r.runScoring))
	reg.Register(tasks.EvaluateSpans, r.wrap(r.runScoring))
	reg.Register(tasks.ImproveSinglePrompt, r.wrap(r.runTuning))
	reg.Register(tasks.RunModelBacktesting, r.wrap(r.runBacktest))

	// Maintenance and fire-and-forget tasks carry no job row.
	reg.Register(tasks.CleanupOldJobs, r.cleanupHandler(jobRetention))
	reg.Register(tasks.CheckReviewTriggers, r.underLock("periodic_reviews", r.checkReviewTriggers))
	reg.Register(tasks.MarkReviewCompleted, r.markReviewCompleted)
	reg.Register(tasks.GenerateCriteria, r.generateCriteria)
	reg.Register(tasks.GenerateInitialDescription, r.generateInitialDescription)
}
