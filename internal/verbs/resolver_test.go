package verbs

import (
	"testing"

	"github.com/example/norskbot/internal/database"
	"github.com/example/norskbot/pkg/models"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	verbs    map[string]*models.VerbForms
	lastKeys []string
}

func (s *fakeStore) FindByNormalizedKey(key string) (*models.VerbForms, error) {
	s.lastKeys = append(s.lastKeys, key)
	if v, ok := s.verbs[key]; ok {
		return v, nil
	}
	return nil, database.ErrVerbNotFound
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare verb", "gå", "gå"},
		{"leading marker stripped", "å gå", "gå"},
		{"upper case lowered", "GÅ", "gå"},
		{"marker and case", "Å GÅ", "gå"},
		{"surrounding whitespace", "  å gå  ", "gå"},
		{"marker without space", "ågå", "gå"},
		{"only the marker", "å", ""},
		// A verb that itself begins with å loses its first letter; this
		// mirrors the stored-side REPLACE fallback
		{"verb starting with the marker letter", "åpne", "pne"},
		{"non-verb text", "xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeInput(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	stored := &models.VerbForms{
		Infinitive:    "gå",
		Presens:       "går",
		Preteritum:    "gikk",
		PresPerfektum: "har gått",
	}
	store := &fakeStore{verbs: map[string]*models.VerbForms{"gå": stored}}
	resolver := NewResolver(store)

	for _, input := range []string{"gå", "å gå", "GÅ", " Å GÅ "} {
		verb, err := resolver.Resolve(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, stored, verb, "input %q", input)
	}

	// Every lookup hit the store with the same normalized key
	for _, key := range store.lastKeys {
		require.Equal(t, "gå", key)
	}
}

func TestResolveNotFound(t *testing.T) {
	resolver := NewResolver(&fakeStore{verbs: map[string]*models.VerbForms{}})

	_, err := resolver.Resolve("xyz")
	require.ErrorIs(t, err, database.ErrVerbNotFound)
}
