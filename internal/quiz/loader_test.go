package quiz

import (
	"testing"

	"github.com/example/norskbot/pkg/models"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	lastType string
	rows     []models.Question
}

func (s *fakeSource) GetByTestType(testType string) ([]models.Question, error) {
	s.lastType = testType
	return s.rows, nil
}

func TestStoreLoaderPassesTypeThrough(t *testing.T) {
	source := &fakeSource{rows: []models.Question{{ID: 1, Question: "q"}}}
	loader := NewStoreLoader(source)

	questions, err := loader.LoadOrdered(Preteritum)
	require.NoError(t, err)
	require.Equal(t, "preteritum", source.lastType)
	require.Equal(t, source.rows, questions)
}
