package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/example/norskbot/pkg/models"
)

// FieldSeparator delimits the fields of one raw verb-list line
const FieldSeparator = ", "

// minFields is the smallest well-formed line: infinitive, three conjugated
// forms and two English glosses
const minFields = 6

// Interchange field names for the present-perfect form. The historical
// producer wrote the key with a trailing space; both spellings are accepted
// on read and the primary one wins when both are present.
const (
	perfektumKey       = "Pres. perfektum"
	perfektumLegacyKey = "Pres. perfektum "
)

// VerbEntry is the interchange value for one verb
type VerbEntry struct {
	Presens       string   `json:"Presens"`
	Preteritum    string   `json:"Preteritum"`
	PresPerfektum string   `json:"-"`
	English       []string `json:"english"`
}

// ParseLine parses one raw verb-list line into an infinitive and entry.
// Lines with fewer than six fields are not well-formed and report ok=false;
// callers treat that as a data-quality skip, not an error. Glosses are taken
// from fields 4 and 5 exactly — the source format carries two per verb.
func ParseLine(line string) (string, VerbEntry, bool) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, FieldSeparator)
	if len(parts) < minFields {
		return "", VerbEntry{}, false
	}

	entry := VerbEntry{
		Presens:       parts[1],
		Preteritum:    parts[2],
		PresPerfektum: parts[3],
		English:       []string{parts[4], parts[5]},
	}
	return parts[0], entry, true
}

// VerbList holds normalized entries keyed by infinitive, preserving source
// order. A duplicate infinitive overwrites the earlier entry in place.
type VerbList struct {
	order   []string
	entries map[string]VerbEntry
}

// NewVerbList creates an empty verb list
func NewVerbList() *VerbList {
	return &VerbList{entries: make(map[string]VerbEntry)}
}

// Add stores an entry under its infinitive, last write wins
func (l *VerbList) Add(infinitive string, entry VerbEntry) {
	if _, seen := l.entries[infinitive]; !seen {
		l.order = append(l.order, infinitive)
	}
	l.entries[infinitive] = entry
}

// Len returns the number of distinct verbs
func (l *VerbList) Len() int {
	return len(l.order)
}

// Records converts the list into storable verb records in source order
func (l *VerbList) Records() []models.VerbForms {
	records := make([]models.VerbForms, 0, len(l.order))
	for _, infinitive := range l.order {
		entry := l.entries[infinitive]
		v := models.VerbForms{
			Infinitive:    infinitive,
			Presens:       entry.Presens,
			Preteritum:    entry.Preteritum,
			PresPerfektum: entry.PresPerfektum,
		}
		v.SetGlosses(entry.English)
		records = append(records, v)
	}
	return records
}

// ParseVerbList reads a raw verb list line by line. Skipped lines are
// returned so the caller can log them; they never abort the batch.
func ParseVerbList(r io.Reader) (*VerbList, []string, error) {
	list := NewVerbList()
	var skipped []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		infinitive, entry, ok := ParseLine(line)
		if !ok {
			skipped = append(skipped, line)
			continue
		}
		list.Add(infinitive, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read verb list: %v", err)
	}

	return list, skipped, nil
}

// rawEntry mirrors the interchange JSON value. The present-perfect form may
// arrive under either historical key spelling.
type rawEntry struct {
	Presens         string   `json:"Presens"`
	Preteritum      string   `json:"Preteritum"`
	Perfektum       *string  `json:"Pres. perfektum"`
	PerfektumLegacy *string  `json:"Pres. perfektum "`
	English         []string `json:"english"`
}

// resolvePerfektum collapses the two key spellings into one value,
// first non-empty wins with the primary spelling checked first
func (e rawEntry) resolvePerfektum() string {
	if e.Perfektum != nil && *e.Perfektum != "" {
		return *e.Perfektum
	}
	if e.PerfektumLegacy != nil && *e.PerfektumLegacy != "" {
		return *e.PerfektumLegacy
	}
	return ""
}

// ReadInterchange decodes interchange JSON (an object keyed by infinitive)
// preserving key order, so the loaded table is deterministic.
func ReadInterchange(r io.Reader) (*VerbList, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read interchange JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("interchange JSON must be an object keyed by infinitive")
	}

	list := NewVerbList()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read interchange key: %v", err)
		}
		infinitive, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected interchange key %v", keyTok)
		}

		var raw rawEntry
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode entry for %q: %v", infinitive, err)
		}

		list.Add(infinitive, VerbEntry{
			Presens:       raw.Presens,
			Preteritum:    raw.Preteritum,
			PresPerfektum: raw.resolvePerfektum(),
			English:       raw.English,
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read interchange JSON: %v", err)
	}
	return list, nil
}

// WriteInterchange encodes the list as interchange JSON. The present-perfect
// key keeps the legacy trailing-space spelling the original producer emitted.
func WriteInterchange(w io.Writer, list *VerbList) error {
	var buf strings.Builder
	buf.WriteString("{")

	for i, infinitive := range list.order {
		entry := list.entries[infinitive]
		english := entry.English
		if english == nil {
			english = []string{}
		}

		value := map[string]interface{}{
			"Presens":          entry.Presens,
			"Preteritum":       entry.Preteritum,
			perfektumLegacyKey: entry.PresPerfektum,
			"english":          english,
		}

		keyJSON, err := json.Marshal(infinitive)
		if err != nil {
			return fmt.Errorf("failed to encode key %q: %v", infinitive, err)
		}
		valueJSON, err := json.MarshalIndent(value, "    ", "    ")
		if err != nil {
			return fmt.Errorf("failed to encode entry for %q: %v", infinitive, err)
		}

		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		buf.Write(keyJSON)
		buf.WriteString(": ")
		buf.Write(valueJSON)
	}

	buf.WriteString("\n}")
	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("failed to write interchange JSON: %v", err)
	}
	return nil
}
