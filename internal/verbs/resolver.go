package verbs

import (
	"strings"

	"github.com/example/norskbot/pkg/models"
)

// infinitiveMarker is the Norwegian "å" prefixed to a verb's infinitive form
const infinitiveMarker = "å"

// Store is the lookup surface the resolver needs
type Store interface {
	FindByNormalizedKey(key string) (*models.VerbForms, error)
}

// Resolver matches free-form user input against stored verbs
type Resolver struct {
	store Store
}

// NewResolver creates a new resolver backed by the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// NormalizeInput lower-cases the input and strips a single leading
// infinitive marker, so "å gå", "GÅ" and "gå" all produce the same key
func NormalizeInput(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if strings.HasPrefix(normalized, infinitiveMarker) {
		normalized = strings.TrimSpace(strings.TrimPrefix(normalized, infinitiveMarker))
	}
	return normalized
}

// Resolve looks up the verb record for the given user input. A miss is
// reported as the store's not-found error, never as a system failure.
func (r *Resolver) Resolve(input string) (*models.VerbForms, error) {
	return r.store.FindByNormalizedKey(NormalizeInput(input))
}
