package llm

import "strings"

// Provider identifies an upstream LLM vendor. Backtest work items are
// interleaved by provider so fanout spreads across vendors instead of
// hammering one.
type Provider string

// Known providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderUnknown   Provider = "unknown"
)

// modelProviders maps model-name prefixes to providers.
var modelProviders = []struct {
	prefix   string
	provider Provider
}{
	{"gpt-", ProviderOpenAI},
	{"o1", ProviderOpenAI},
	{"o3", ProviderOpenAI},
	{"claude-", ProviderAnthropic},
	{"gemini-", ProviderGoogle},
}

// ProviderFor returns the provider serving the given model name.
func ProviderFor(model string) Provider {
	for _, entry := range modelProviders {
		if strings.HasPrefix(model, entry.prefix) {
			return entry.provider
		}
	}
	return ProviderUnknown
}

// InterleaveByProvider reorders items round-robin across providers, keyed by
// the provider of keyFn(item), preserving relative order within a provider.
func InterleaveByProvider[T any](items []T, keyFn func(T) string) []T {
	groups := map[Provider][]T{}
	var order []Provider
	for _, item := range items {
		p := ProviderFor(keyFn(item))
		if _, seen := groups[p]; !seen {
			order = append(order, p)
		}
		groups[p] = append(groups[p], item)
	}

	out := make([]T, 0, len(items))
	for len(out) < len(items) {
		for _, p := range order {
			if len(groups[p]) > 0 {
				out = append(out, groups[p][0])
				groups[p] = groups[p][1:]
			}
		}
	}
	return out
}
