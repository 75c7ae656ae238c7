package quiz

import "github.com/example/norskbot/pkg/models"

// QuestionSource is the store surface the loader needs
type QuestionSource interface {
	GetByTestType(testType string) ([]models.Question, error)
}

// StoreLoader loads question sets from the tests table. The store returns
// rows in insertion order, so repeated sessions for the same test type are
// deterministic across runs.
type StoreLoader struct {
	source QuestionSource
}

// NewStoreLoader creates a loader over the given question source
func NewStoreLoader(source QuestionSource) *StoreLoader {
	return &StoreLoader{source: source}
}

// LoadOrdered returns the question sequence for a test type
func (l *StoreLoader) LoadOrdered(testType TestType) ([]models.Question, error) {
	return l.source.GetByTestType(string(testType))
}
