// Package reference holds the built-in static study material: oral exam
// themes and preposition usage notes.
package reference

import "github.com/example/norskbot/pkg/models"

// OralThemes returns the oral exam themes with their reference texts,
// in presentation order. They are seeded into the themes/texts tables.
func OralThemes() []models.ThemeContent {
	return []models.ThemeContent{
		{
			Title: "Extreme Weather",
			Texts: []string{
				"Examples of extreme weather conditions in Norway include heavy snowstorms and strong winds.",
			},
		},
		{
			Title: "My Hobbies",
			Texts: []string{
				"Discussing hobbies like hiking, skiing, and reading popular Norwegian literature.",
			},
		},
		{
			Title: "Travel in Norway",
			Texts: []string{
				"Information about popular travel destinations, such as the fjords and the northern lights.",
			},
		},
	}
}

// Preposition describes one preposition with a usage note and example
type Preposition struct {
	Word  string
	Usage string
}

// Prepositions returns the preposition reference in presentation order
func Prepositions() []Preposition {
	return []Preposition{
		{"på", "Brukes for å indikere posisjon på overflaten, tid (dager, datoer). Eksempel: Jeg står på gulvet."},
		{"i", "Brukes for å indikere posisjon inne i noe, tid (måneder, år). Eksempel: Jeg bor i Norge."},
		{"om", "Brukes for å indikere fremtid, tid (uker, måneder). Eksempel: Vi møtes om en uke."},
		{"under", "Brukes for å indikere posisjon under noe. Eksempel: Katten er under bordet."},
		{"ved", "Brukes for å indikere nærhet til noe. Eksempel: Jeg står ved siden av deg."},
		{"over", "Brukes for å indikere posisjon over noe. Eksempel: Fuglen flyr over huset."},
		{"bak", "Brukes for å indikere posisjon bak noe. Eksempel: Han står bak døren."},
		{"foran", "Brukes for å indikere posisjon foran noe. Eksempel: Bilen står foran huset."},
		{"mellom", "Brukes for å indikere posisjon mellom to objekter. Eksempel: Jeg står mellom to trær."},
		{"utenfor", "Brukes for å indikere posisjon utenfor noe. Eksempel: Vi møtes utenfor butikken."},
		{"innenfor", "Brukes for å indikere posisjon innenfor noe. Eksempel: Han bor innenfor bymuren."},
		{"langs", "Brukes for å indikere langs noe. Eksempel: Vi går langs elven."},
		{"mot", "Brukes for å indikere retning mot noe. Eksempel: Han går mot skolen."},
		{"rundt", "Brukes for å indikere rundt noe. Eksempel: Vi går rundt parken."},
		{"til", "Brukes for å indikere retning til noe. Eksempel: Jeg skal til Oslo."},
	}
}
