package services

import "github.com/promptlens/promptlens/ent"

// Services bundles the per-aggregate repositories over one shared Ent client.
type Services struct {
	Projects    *ProjectService
	Spans       *SpanService
	Prompts     *PromptService
	Jobs        *JobService
	Suggestions *SuggestionService
	Backtests   *BacktestService
}

// New wires every service to the client.
func New(client *ent.Client) *Services {
	return &Services{
		Projects:    NewProjectService(client),
		Spans:       NewSpanService(client),
		Prompts:     NewPromptService(client),
		Jobs:        NewJobService(client),
		Suggestions: NewSuggestionService(client),
		Backtests:   NewBacktestService(client),
	}
}
