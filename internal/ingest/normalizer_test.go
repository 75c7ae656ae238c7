package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		wantOK         bool
		wantInfinitive string
		wantEntry      VerbEntry
	}{
		{
			name:           "well-formed line",
			line:           "gå, går, gikk, har gått, go, walk",
			wantOK:         true,
			wantInfinitive: "gå",
			wantEntry: VerbEntry{
				Presens:       "går",
				Preteritum:    "gikk",
				PresPerfektum: "har gått",
				English:       []string{"go", "walk"},
			},
		},
		{
			name:           "trailing newline stripped",
			line:           "spise, spiser, spiste, har spist, eat, dine\n",
			wantOK:         true,
			wantInfinitive: "spise",
			wantEntry: VerbEntry{
				Presens:       "spiser",
				Preteritum:    "spiste",
				PresPerfektum: "har spist",
				English:       []string{"eat", "dine"},
			},
		},
		{
			name:           "extra fields beyond the sixth are ignored",
			line:           "se, ser, så, har sett, see, watch, look",
			wantOK:         true,
			wantInfinitive: "se",
			wantEntry: VerbEntry{
				Presens:       "ser",
				Preteritum:    "så",
				PresPerfektum: "har sett",
				English:       []string{"see", "watch"},
			},
		},
		{
			name:   "five fields is not well-formed",
			line:   "gå, går, gikk, har gått, go",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
		{
			name:   "wrong delimiter",
			line:   "gå,går,gikk,har gått,go,walk",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infinitive, entry, ok := ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			require.Equal(t, tt.wantInfinitive, infinitive)
			require.Equal(t, tt.wantEntry, entry)
		})
	}
}

func TestParseVerbList(t *testing.T) {
	input := strings.Join([]string{
		"gå, går, gikk, har gått, go, walk",
		"kort linje",
		"",
		"spise, spiser, spiste, har spist, eat, dine",
	}, "\n")

	list, skipped, err := ParseVerbList(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	require.Equal(t, []string{"kort linje"}, skipped)

	records := list.Records()
	require.Len(t, records, 2)
	require.Equal(t, "gå", records[0].Infinitive)
	require.Equal(t, "spise", records[1].Infinitive)
	require.Equal(t, []string{"go", "walk"}, records[0].Glosses())
}

func TestVerbListLastWriteWins(t *testing.T) {
	list := NewVerbList()
	list.Add("gå", VerbEntry{Presens: "old"})
	list.Add("spise", VerbEntry{Presens: "spiser"})
	list.Add("gå", VerbEntry{Presens: "går"})

	require.Equal(t, 2, list.Len())
	records := list.Records()
	// The duplicate keeps its original position but the later value
	require.Equal(t, "gå", records[0].Infinitive)
	require.Equal(t, "går", records[0].Presens)
}

func TestReadInterchange(t *testing.T) {
	tests := []struct {
		name          string
		json          string
		wantPerfektum string
	}{
		{
			name:          "primary key",
			json:          `{"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum": "har gått", "english": ["go"]}}`,
			wantPerfektum: "har gått",
		},
		{
			name:          "legacy trailing-space key",
			json:          `{"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum ": "har gått", "english": ["go"]}}`,
			wantPerfektum: "har gått",
		},
		{
			name:          "both keys, primary wins",
			json:          `{"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum": "har gått", "Pres. perfektum ": "feil", "english": ["go"]}}`,
			wantPerfektum: "har gått",
		},
		{
			name:          "null primary falls back to legacy",
			json:          `{"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum": null, "Pres. perfektum ": "har gått", "english": ["go"]}}`,
			wantPerfektum: "har gått",
		},
		{
			name:          "neither key present",
			json:          `{"gå": {"Presens": "går", "Preteritum": "gikk", "english": ["go"]}}`,
			wantPerfektum: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ReadInterchange(strings.NewReader(tt.json))
			require.NoError(t, err)
			require.Equal(t, 1, list.Len())

			records := list.Records()
			require.Equal(t, "gå", records[0].Infinitive)
			require.Equal(t, tt.wantPerfektum, records[0].PresPerfektum)
		})
	}
}

func TestReadInterchangePreservesOrder(t *testing.T) {
	input := `{
		"være": {"Presens": "er", "Preteritum": "var", "Pres. perfektum": "har vært", "english": ["be"]},
		"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum": "har gått", "english": ["go"]},
		"ha": {"Presens": "har", "Preteritum": "hadde", "Pres. perfektum": "har hatt", "english": ["have"]}
	}`

	list, err := ReadInterchange(strings.NewReader(input))
	require.NoError(t, err)

	records := list.Records()
	require.Len(t, records, 3)
	require.Equal(t, "være", records[0].Infinitive)
	require.Equal(t, "gå", records[1].Infinitive)
	require.Equal(t, "ha", records[2].Infinitive)
}

func TestReadInterchangeRejectsNonObject(t *testing.T) {
	_, err := ReadInterchange(strings.NewReader(`["gå"]`))
	require.Error(t, err)
}

func TestInterchangeRoundTrip(t *testing.T) {
	list := NewVerbList()
	list.Add("gå", VerbEntry{
		Presens:       "går",
		Preteritum:    "gikk",
		PresPerfektum: "har gått",
		English:       []string{"go", "walk"},
	})
	list.Add("være", VerbEntry{
		Presens:       "er",
		Preteritum:    "var",
		PresPerfektum: "har vært",
		English:       []string{"be", "exist"},
	})

	var sb strings.Builder
	require.NoError(t, WriteInterchange(&sb, list))

	// The writer keeps the legacy trailing-space spelling the original
	// producer emitted
	require.Contains(t, sb.String(), `"Pres. perfektum "`)

	loaded, err := ReadInterchange(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, list.Records(), loaded.Records())
}
