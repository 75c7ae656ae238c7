package quiz

import (
	"fmt"

	"github.com/example/norskbot/pkg/models"
)

// TestType identifies the grammatical form a quiz drills
type TestType string

const (
	// Presens tests present-tense conjugation
	Presens TestType = "presens"
	// Preteritum tests past-tense conjugation
	Preteritum TestType = "preteritum"
)

// TestTypes returns the selectable quiz categories in menu order
func TestTypes() []TestType {
	return []TestType{Presens, Preteritum}
}

// Outcome classifies one submitted answer
type Outcome int

const (
	// Correct means the given answer matched exactly
	Correct Outcome = iota
	// Incorrect means it did not; the Result carries the true answer
	Incorrect
)

// Result records the outcome of one answered question
type Result struct {
	Question      string
	GivenAnswer   string
	Outcome       Outcome
	CorrectAnswer string // set when the outcome is Incorrect
}

// Loader fetches the ordered question set for a test type
type Loader interface {
	LoadOrdered(testType TestType) ([]models.Question, error)
}

// Session sequences one quiz run over a fixed, ordered question set.
// It owns its own state; callers hold the session and drive it, nothing
// is kept in package-level or framework-managed globals.
type Session struct {
	testType  TestType
	questions []models.Question
	current   int
	results   []Result
}

// NewSession loads the question set for a test type and starts a fresh run
// at the first question with no recorded results. An empty question set is a
// valid, immediately completed session.
func NewSession(loader Loader, testType TestType) (*Session, error) {
	questions, err := loader.LoadOrdered(testType)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s questions: %v", testType, err)
	}
	return &Session{testType: testType, questions: questions}, nil
}

// TestType returns the category this session drills
func (s *Session) TestType() TestType {
	return s.testType
}

// Current returns the question at the cursor, or ok=false when the session
// has no current question
func (s *Session) Current() (models.Question, bool) {
	if s.current >= len(s.questions) {
		return models.Question{}, false
	}
	return s.questions[s.current], true
}

// Position reports the 0-based cursor and the total question count
func (s *Session) Position() (int, int) {
	return s.current, len(s.questions)
}

// Submit records the outcome for the current question. Correctness is an
// exact string match against the stored answer. Submitting with no current
// question is a guarded no-op, reported via ok=false. The cursor does not
// move; advancing is a separate, explicit action.
func (s *Session) Submit(givenAnswer string) (Result, bool) {
	question, ok := s.Current()
	if !ok {
		return Result{}, false
	}

	result := Result{
		Question:    question.Question,
		GivenAnswer: givenAnswer,
	}
	if givenAnswer == question.CorrectAnswer {
		result.Outcome = Correct
	} else {
		result.Outcome = Incorrect
		result.CorrectAnswer = question.CorrectAnswer
	}

	s.results = append(s.results, result)
	return result, true
}

// Advance moves to the next question. Passing the last question completes
// the run: the accumulated results are returned as the summary and the
// session resets to the first question with empty results, ready for replay
// of the same sequence.
func (s *Session) Advance() ([]Result, bool) {
	if s.current+1 < len(s.questions) {
		s.current++
		return nil, false
	}

	summary := s.results
	s.current = 0
	s.results = nil
	return summary, true
}

// Completed reports whether the session has no question to show
func (s *Session) Completed() bool {
	return s.current >= len(s.questions)
}

// Results returns the outcomes recorded so far in submission order
func (s *Session) Results() []Result {
	return s.results
}

// CountCorrect tallies the Correct outcomes in a result list
func CountCorrect(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Outcome == Correct {
			count++
		}
	}
	return count
}
