package models

import "strings"

// ListSeparator joins multi-value text columns (glosses, quiz options)
// into a single stored string. Readers split on the same separator.
const ListSeparator = ", "

// VerbForms represents one Norwegian verb's conjugation set
type VerbForms struct {
	ID            int    `json:"id" db:"id"`
	Infinitive    string `json:"infinitive" db:"infinitive"`
	Presens       string `json:"presens" db:"presens"`
	Preteritum    string `json:"preteritum" db:"preteritum"`
	PresPerfektum string `json:"pres_perfektum" db:"pres_perfektum"`
	English       string `json:"english" db:"english"` // glosses joined by ListSeparator
}

// Glosses returns the English translations in stored order
func (v *VerbForms) Glosses() []string {
	if v.English == "" {
		return nil
	}
	return strings.Split(v.English, ListSeparator)
}

// SetGlosses serializes the translations into the stored column format
func (v *VerbForms) SetGlosses(glosses []string) {
	v.English = strings.Join(glosses, ListSeparator)
}
