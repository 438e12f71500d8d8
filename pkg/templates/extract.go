package templates

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extract derives templates from a set of observed prompt texts.
//
// Texts are tokenised on whitespace and clustered greedily: a text joins the
// first cluster whose representative has the same token count and enough
// positionally shared tokens. Within a cluster, positions where all members
// agree stay literal; the rest become {var_N} placeholders in order of
// appearance. Singleton clusters yield the text itself as a variable-free
// template.
//
// The output is deduplicated and ordered by first appearance.
func Extract(texts []string) []string {
	type cluster struct {
		tokens  [][]string
		rep     []string
		repText string
	}

	var clusters []*cluster
	for _, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		tokens := strings.Fields(trimmed)

		joined := false
		for _, c := range clusters {
			if len(c.rep) == len(tokens) && tokenOverlap(c.rep, tokens) >= 0.5 {
				c.tokens = append(c.tokens, tokens)
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, &cluster{
				tokens:  [][]string{tokens},
				rep:     tokens,
				repText: trimmed,
			})
		}
	}

	seen := map[string]bool{}
	var out []string
	for _, c := range clusters {
		tmpl := buildTemplate(c.tokens, c.repText)
		if !seen[tmpl] {
			seen[tmpl] = true
			out = append(out, tmpl)
		}
	}
	return out
}

// tokenOverlap is the share of positions where both token lists agree.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 {
		return 0
	}
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	return float64(same) / float64(len(a))
}

// buildTemplate collapses a cluster into one template string. A position
// becomes a placeholder when any member disagrees with the first.
func buildTemplate(members [][]string, repText string) string {
	if len(members) == 1 {
		return repText
	}

	first := members[0]
	varIndex := 0
	parts := make([]string, len(first))
	for i, token := range first {
		uniform := true
		for _, m := range members[1:] {
			if m[i] != token {
				uniform = false
				break
			}
		}
		if uniform {
			parts[i] = token
		} else {
			parts[i] = placeholderAt(members, i, varIndex)
			varIndex++
		}
	}
	return strings.Join(parts, " ")
}

// placeholderAt renders the varying position i. Punctuation shared by every
// member around the varying core stays literal ("Ada," / "Bob," becomes
// "{var_N}," rather than swallowing the comma); anything else makes the whole
// token the placeholder.
func placeholderAt(members [][]string, i, varIndex int) string {
	placeholder := fmt.Sprintf("{var_%d}", varIndex)

	lead, core, trail := splitPunct(members[0][i])
	if core == "" {
		return placeholder
	}
	for _, m := range members[1:] {
		l, c, t := splitPunct(m[i])
		if c == "" || l != lead || t != trail {
			return placeholder
		}
	}
	return lead + placeholder + trail
}

// splitPunct peels leading and trailing punctuation runs off a token.
func splitPunct(token string) (lead, core, trail string) {
	core = token
	for core != "" {
		r, size := utf8.DecodeRuneInString(core)
		if !unicode.IsPunct(r) {
			break
		}
		core = core[size:]
	}
	lead = token[:len(token)-len(core)]
	for core != "" {
		r, size := utf8.DecodeLastRuneInString(core)
		if !unicode.IsPunct(r) {
			break
		}
		core = core[:len(core)-size]
	}
	trail = token[len(lead)+len(core):]
	return lead, core, trail
}
