package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeAndParsePromptID(t *testing.T) {
	id := ComposePromptID("6ba7b810-9dad-11d1-80b4-00c04fd430c8", 3, "greeter")
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8_3_greeter", id)

	project, version, slug, err := ParsePromptID(id)
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", project)
	assert.Equal(t, 3, version)
	assert.Equal(t, "greeter", slug)
}

func TestParsePromptIDSlugWithUnderscores(t *testing.T) {
	project, version, slug, err := ParsePromptID("p1_12_order_status_check")
	require.NoError(t, err)
	assert.Equal(t, "p1", project)
	assert.Equal(t, 12, version)
	assert.Equal(t, "order_status_check", slug)
}

func TestParsePromptIDInvalid(t *testing.T) {
	for _, bad := range []string{"", "noparts", "p1_", "p1_x_slug", "p1_2_", "_2_slug"} {
		_, _, _, err := ParsePromptID(bad)
		assert.Error(t, err, bad)
	}
}
