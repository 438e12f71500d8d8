// Package templates implements the deterministic template machinery used by
// agent discovery: rendering a template with variables, matching an observed
// prompt text back to a template, slug generation, content hashing, and NUL
// stripping of extracted variables.
package templates

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// varPattern matches {var_N} placeholders inside a template.
var varPattern = regexp.MustCompile(`\{var_(\d+)\}`)

// Render substitutes variables into a template. Unknown placeholders are left
// in place.
func Render(template string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := placeholder[1 : len(placeholder)-1]
		if val, ok := vars[name]; ok {
			return val
		}
		return placeholder
	})
}

// Match tests whether text is an instantiation of template and returns the
// captured variables. Matching is anchored and literal-exact: every
// non-placeholder byte must be present verbatim.
func Match(template, text string) (map[string]string, bool) {
	names := []string{}
	var pattern strings.Builder
	pattern.WriteString(`(?s)^`)

	last := 0
	for _, loc := range varPattern.FindAllStringSubmatchIndex(template, -1) {
		pattern.WriteString(regexp.QuoteMeta(template[last:loc[0]]))
		pattern.WriteString(`(.+?)`)
		names = append(names, "var_"+template[loc[2]:loc[3]])
		last = loc[1]
	}
	pattern.WriteString(regexp.QuoteMeta(template[last:]))
	pattern.WriteString(`$`)

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	vars := make(map[string]string, len(names))
	for i, name := range names {
		vars[name] = m[i+1]
	}
	return vars, true
}

// ContentHash returns the deterministic hash of a template's content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// NewSlug generates a random prompt slug. Callers recheck collisions against
// the project's existing slugs and regenerate until unique.
func NewSlug() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// constant-free panic rather than silently reusing slugs.
		panic(fmt.Sprintf("slug generation failed: %v", err))
	}
	return "agent-" + hex.EncodeToString(buf)
}

// StripNULs removes NUL bytes from every string reachable from v, recursing
// through maps and slices. Postgres rejects \x00 inside JSONB strings, and
// ingested span inputs occasionally carry them.
func StripNULs(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return strings.ReplaceAll(val, "\x00", "")
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[strings.ReplaceAll(k, "\x00", "")] = StripNULs(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = StripNULs(item)
		}
		return out
	default:
		return v
	}
}

// StripNULsFromVars is StripNULs specialised to the string variable maps the
// matcher produces.
func StripNULsFromVars(vars map[string]string) map[string]string {
	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out[k] = strings.ReplaceAll(v, "\x00", "")
	}
	return out
}
