package quiz

import "github.com/example/norskbot/pkg/models"

// SeedQuestions returns the built-in grammar question sets. They are
// inserted in this order, which fixes the replay sequence per test type.
func SeedQuestions() []models.Question {
	type seed struct {
		question string
		correct  string
		options  []string
		testType TestType
	}

	seeds := []seed{
		{"Jeg ___ på skolen hver dag. (å gå)", "går", []string{"går", "gikk", "har gått"}, Presens},
		{"Hun ___ norsk og engelsk. (å snakke)", "snakker", []string{"snakket", "snakker", "har snakket"}, Presens},
		{"Vi ___ i Oslo. (å bo)", "bor", []string{"bodde", "bor", "har bodd"}, Presens},
		{"Han ___ kaffe om morgenen. (å drikke)", "drikker", []string{"drikker", "drakk", "har drukket"}, Presens},
		{"De ___ fotball på lørdager. (å spille)", "spiller", []string{"spilte", "har spilt", "spiller"}, Presens},
		{"Jeg ___ en bok nå. (å lese)", "leser", []string{"leste", "leser", "har lest"}, Presens},
		{"Katten ___ under bordet. (å sove)", "sover", []string{"sov", "sover", "har sovet"}, Presens},
		{"Du ___ veldig fort. (å løpe)", "løper", []string{"løper", "løp", "har løpt"}, Presens},

		{"I går ___ jeg til byen. (å gå)", "gikk", []string{"går", "gikk", "har gått"}, Preteritum},
		{"Hun ___ middag i går kveld. (å lage)", "laget", []string{"lager", "laget", "har laget"}, Preteritum},
		{"Vi ___ en film i helgen. (å se)", "så", []string{"ser", "så", "har sett"}, Preteritum},
		{"Han ___ mye vann etter treningen. (å drikke)", "drakk", []string{"drikker", "drakk", "har drukket"}, Preteritum},
		{"De ___ i Bergen i fjor. (å bo)", "bodde", []string{"bor", "bodde", "har bodd"}, Preteritum},
		{"Jeg ___ brevet i går. (å skrive)", "skrev", []string{"skriver", "skrev", "har skrevet"}, Preteritum},
		{"Barna ___ tidlig i går. (å sove)", "sov", []string{"sover", "sov", "har sovet"}, Preteritum},
		{"Du ___ meg ikke. (å høre)", "hørte", []string{"hører", "hørte", "har hørt"}, Preteritum},
	}

	questions := make([]models.Question, 0, len(seeds))
	for _, s := range seeds {
		q := models.Question{
			Question:      s.question,
			CorrectAnswer: s.correct,
			TestType:      string(s.testType),
		}
		q.SetOptions(s.options)
		questions = append(questions, q)
	}
	return questions
}
