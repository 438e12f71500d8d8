package templates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got := Render("Hello {var_0}, welcome to {var_1}!", map[string]string{
		"var_0": "Ada",
		"var_1": "PromptLens",
	})
	assert.Equal(t, "Hello Ada, welcome to PromptLens!", got)
}

func TestRenderUnknownPlaceholderLeftInPlace(t *testing.T) {
	got := Render("Hello {var_0}", map[string]string{})
	assert.Equal(t, "Hello {var_0}", got)
}

func TestMatchCapturesVariables(t *testing.T) {
	vars, ok := Match("Hello {var_0}, welcome!", "Hello Ada, welcome!")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"var_0": "Ada"}, vars)
}

func TestMatchMultiWordValue(t *testing.T) {
	vars, ok := Match("Summarize the ticket: {var_0}", "Summarize the ticket: printer on fire again")
	require.True(t, ok)
	assert.Equal(t, "printer on fire again", vars["var_0"])
}

func TestMatchRejectsDifferentLiterals(t *testing.T) {
	_, ok := Match("Hello {var_0}, welcome!", "Goodbye Ada, welcome!")
	assert.False(t, ok)
}

func TestMatchNoVariables(t *testing.T) {
	vars, ok := Match("Fixed system prompt.", "Fixed system prompt.")
	require.True(t, ok)
	assert.Empty(t, vars)

	_, ok = Match("Fixed system prompt.", "Other text.")
	assert.False(t, ok)
}

// Applying a template to variables and re-matching must recover the
// variables exactly.
func TestRenderMatchRoundTrip(t *testing.T) {
	template := "Translate {var_0} into {var_1}, politely."
	cases := []map[string]string{
		{"var_0": "hello", "var_1": "French"},
		{"var_0": "x", "var_1": "German"},
		{"var_0": "a longer phrase with spaces", "var_1": "Dutch"},
	}
	for _, vars := range cases {
		rendered := Render(template, vars)
		got, ok := Match(template, rendered)
		require.True(t, ok, rendered)
		assert.Equal(t, vars, got)
	}
}

func TestContentHashDeterministic(t *testing.T) {
	a := ContentHash("Hello {var_0}")
	b := ContentHash("Hello {var_0}")
	c := ContentHash("Hello {var_1}")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestNewSlugShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		slug := NewSlug()
		assert.True(t, strings.HasPrefix(slug, "agent-"))
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
	}
}

func TestStripNULs(t *testing.T) {
	in := map[string]interface{}{
		"name": "A\x00da",
		"nested": map[string]interface{}{
			"v": "x\x00",
		},
		"list":  []interface{}{"a\x00b", 42},
		"count": 3,
	}
	out := StripNULs(in).(map[string]interface{})
	assert.Equal(t, "Ada", out["name"])
	assert.Equal(t, "x", out["nested"].(map[string]interface{})["v"])
	assert.Equal(t, "ab", out["list"].([]interface{})[0])
	assert.Equal(t, 42, out["list"].([]interface{})[1])
	assert.Equal(t, 3, out["count"])
}

func TestExtractSingleTemplateFromSimilarTexts(t *testing.T) {
	texts := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		texts = append(texts, fmt.Sprintf("Hello name%d, welcome!", i))
	}
	got := Extract(texts)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello {var_0}, welcome!", got[0])

	// Every source text must match the extracted template.
	for _, text := range texts {
		_, ok := Match(got[0], text)
		assert.True(t, ok, text)
	}
}

func TestExtractSeparatesDissimilarTexts(t *testing.T) {
	got := Extract([]string{
		"Hello Ada, welcome!",
		"Hello Bob, welcome!",
		"Summarize this incident report in two sentences please now",
	})
	require.Len(t, got, 2)
	assert.Contains(t, got, "Hello {var_0}, welcome!")
	assert.Contains(t, got, "Summarize this incident report in two sentences please now")
}

func TestExtractIgnoresEmptyTexts(t *testing.T) {
	got := Extract([]string{"", "   ", "Just one prompt"})
	require.Len(t, got, 1)
	assert.Equal(t, "Just one prompt", got[0])
}

// Punctuation attached to a varying token belongs to the template, not the
// placeholder: "(Ada)" / "(Bob)" must extract as "({var_0})".
func TestExtractKeepsSharedPunctuationLiteral(t *testing.T) {
	got := Extract([]string{
		"Ticket (Ada) was escalated.",
		"Ticket (Bob) was escalated.",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Ticket ({var_0}) was escalated.", got[0])

	vars, ok := Match(got[0], "Ticket (Ada) was escalated.")
	require.True(t, ok)
	assert.Equal(t, "Ada", vars["var_0"])
}

func TestExtractDifferingPunctuationStaysInPlaceholder(t *testing.T) {
	got := Extract([]string{
		"Say hi, Ada!",
		"Say hi, Bob?",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Say hi, {var_0}", got[0])
}

func TestExtractMultipleVariablePositions(t *testing.T) {
	got := Extract([]string{
		"Order 1 for alice shipped",
		"Order 2 for bob shipped",
		"Order 3 for carol shipped",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Order {var_0} for {var_1} shipped", got[0])
}
