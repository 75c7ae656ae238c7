package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOralThemes(t *testing.T) {
	themes := OralThemes()
	require.NotEmpty(t, themes)
	for _, theme := range themes {
		require.NotEmpty(t, theme.Title)
		require.NotEmpty(t, theme.Texts)
	}
}

func TestPrepositions(t *testing.T) {
	preps := Prepositions()
	require.NotEmpty(t, preps)

	seen := make(map[string]bool)
	for _, p := range preps {
		require.NotEmpty(t, p.Word)
		require.NotEmpty(t, p.Usage)
		require.False(t, seen[p.Word], "duplicate preposition %q", p.Word)
		seen[p.Word] = true
	}
}
