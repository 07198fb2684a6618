package marp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()
	require.Len(t, themes, 3)

	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
		assert.NotEmpty(t, theme.Description, "theme %s has no description", theme.Name)
	}
	assert.Equal(t, []string{"default", "gaia", "uncover"}, names)
}
