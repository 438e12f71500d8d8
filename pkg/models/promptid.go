// Package models holds the load-bearing JSON sub-schemas stored in the
// database's JSON columns, and the composite prompt id codec. External tools
// parse these shapes, so they must round-trip exactly.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ComposePromptID builds the composite prompt id "{project}_{version}_{slug}"
// that spans use to reference a prompt version. Project ids are UUIDs and
// contain no underscores; slugs may.
func ComposePromptID(projectID string, version int, slug string) string {
	return fmt.Sprintf("%s_%d_%s", projectID, version, slug)
}

// ParsePromptID splits a composite prompt id back into its parts.
func ParsePromptID(promptID string) (projectID string, version int, slug string, err error) {
	first := strings.IndexByte(promptID, '_')
	if first <= 0 {
		return "", 0, "", fmt.Errorf("invalid prompt id %q", promptID)
	}
	rest := promptID[first+1:]
	second := strings.IndexByte(rest, '_')
	if second <= 0 || second == len(rest)-1 {
		return "", 0, "", fmt.Errorf("invalid prompt id %q", promptID)
	}

	version, err = strconv.Atoi(rest[:second])
	if err != nil {
		return "", 0, "", fmt.Errorf("invalid version in prompt id %q: %w", promptID, err)
	}
	return promptID[:first], version, rest[second+1:], nil
}
