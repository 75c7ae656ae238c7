package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/example/norskbot/internal/database"
	"github.com/example/norskbot/internal/quiz"
	"github.com/example/norskbot/internal/reference"
	"github.com/example/norskbot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data prefixes
const (
	callbackTest   = "test:"
	callbackAnswer = "ans:"
	callbackNext   = "next"
	callbackTheme  = "theme:"
)

// handleCommand handles bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		return b.handleStart(chatID)
	case "help":
		return b.handleHelp(chatID)
	case "verb":
		args := strings.TrimSpace(message.CommandArguments())
		if args == "" {
			return b.sendText(chatID, "Skriv inn verb: /verb å gå")
		}
		return b.handleVerbLookup(chatID, args)
	case "test":
		return b.handleTestSelection(chatID)
	case "themes":
		return b.handleThemes(chatID)
	case "prepositions":
		return b.handlePrepositions(chatID)
	case "stats":
		return b.handleStats(chatID)
	default:
		return b.sendText(chatID, "Ukjent kommando. Prøv /help.")
	}
}

func (b *Bot) handleStart(chatID int64) error {
	return b.sendText(chatID, "Velkommen til *Learn Norwegian*!\n\n"+
		"/test — grammatikktester\n"+
		"/verb — verbformer\n"+
		"/themes — muntlige temaer\n"+
		"/prepositions — preposisjoner\n"+
		"/stats — dine resultater\n\n"+
		"Du kan også bare skrive et verb for å slå det opp.")
}

func (b *Bot) handleHelp(chatID int64) error {
	return b.sendText(chatID, "Kommandoer:\n"+
		"/test — velg en grammatikktest (presens, preteritum)\n"+
		"/verb <verb> — vis bøyningsformene til et verb\n"+
		"/themes — les muntlige temaer\n"+
		"/prepositions — preposisjoner med eksempler\n"+
		"/stats — siste testresultater")
}

// handleVerbLookup resolves user input against the verb table and renders
// the conjugation forms. A miss is a normal outcome, not a failure.
func (b *Bot) handleVerbLookup(chatID int64, input string) error {
	verb, err := b.resolver.Resolve(input)
	if errors.Is(err, database.ErrVerbNotFound) {
		return b.sendText(chatID, "Formene til verbet ble ikke funnet i databasen.")
	}
	if err != nil {
		log.Printf("Verb lookup failed: %v", err)
		return b.sendText(chatID, "Noe gikk galt med databasen. Prøv igjen senere.")
	}

	var sb strings.Builder
	sb.WriteString("*Formene til verbet:*\n")
	sb.WriteString(fmt.Sprintf("Infinitiv: %s\n", verb.Infinitive))
	sb.WriteString(fmt.Sprintf("Presens: %s\n", verb.Presens))
	sb.WriteString(fmt.Sprintf("Preteritum: %s\n", verb.Preteritum))
	sb.WriteString(fmt.Sprintf("Presens perfektum: %s\n", verb.PresPerfektum))
	if glosses := verb.Glosses(); len(glosses) > 0 {
		sb.WriteString(fmt.Sprintf("Engelsk: %s\n", strings.Join(glosses, ", ")))
	}
	return b.sendText(chatID, sb.String())
}

// handleTestSelection shows the test type menu
func (b *Bot) handleTestSelection(chatID int64) error {
	var rows [][]MenuButton
	for _, t := range quiz.TestTypes() {
		rows = append(rows, []MenuButton{{
			Text:         capitalize(string(t)),
			CallbackData: callbackTest + string(t),
		}})
	}

	msg := tgbotapi.NewMessage(chatID, "Velg test type:")
	msg.ReplyMarkup = createKeyboard(rows)
	return b.send(msg)
}

// capitalize upper-cases the first letter of an ASCII word
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// handleThemes lists the oral themes from the store
func (b *Bot) handleThemes(chatID int64) error {
	themes, err := b.themes.GetAllThemes()
	if err != nil {
		log.Printf("Failed to load themes: %v", err)
		return b.sendText(chatID, "Noe gikk galt med databasen. Prøv igjen senere.")
	}
	if len(themes) == 0 {
		return b.sendText(chatID, "Ingen temaer funnet.")
	}

	var rows [][]MenuButton
	for _, theme := range themes {
		rows = append(rows, []MenuButton{{
			Text:         theme.Title,
			CallbackData: callbackTheme + strconv.FormatInt(theme.ID, 10),
		}})
	}

	msg := tgbotapi.NewMessage(chatID, "Velg tema:")
	msg.ReplyMarkup = createKeyboard(rows)
	return b.send(msg)
}

// handlePrepositions renders the static preposition reference
func (b *Bot) handlePrepositions(chatID int64) error {
	var sb strings.Builder
	sb.WriteString("*Preposisjoner*\n\n")
	for _, prep := range reference.Prepositions() {
		sb.WriteString(fmt.Sprintf("*%s* — %s\n\n", prep.Word, prep.Usage))
	}
	return b.sendText(chatID, sb.String())
}

// handleStats shows the most recent completed quiz results
func (b *Bot) handleStats(chatID int64) error {
	results, err := b.results.GetRecent(b.config.StatsLimit)
	if err != nil {
		log.Printf("Failed to load quiz results: %v", err)
		return b.sendText(chatID, "Noe gikk galt med databasen. Prøv igjen senere.")
	}
	if len(results) == 0 {
		return b.sendText(chatID, "Ingen resultater ennå. Prøv /test!")
	}

	var sb strings.Builder
	sb.WriteString("*Dine siste resultater:*\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%s: %d av %d riktige (%s)\n",
			r.TestType, r.Correct, r.Total, r.TakenAt.Format("02.01.2006")))
	}
	return b.sendText(chatID, sb.String())
}

// handleCallback handles inline keyboard presses
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) error {
	// Acknowledge the press so the client stops the spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	chatID := query.Message.Chat.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackTest):
		return b.startTest(chatID, quiz.TestType(strings.TrimPrefix(data, callbackTest)))
	case strings.HasPrefix(data, callbackAnswer):
		return b.handleAnswer(chatID, strings.TrimPrefix(data, callbackAnswer))
	case data == callbackNext:
		return b.handleNext(chatID)
	case strings.HasPrefix(data, callbackTheme):
		return b.handleThemeContent(chatID, strings.TrimPrefix(data, callbackTheme))
	}
	return nil
}

// startTest begins a fresh session for the chat, discarding any prior one
// regardless of its state
func (b *Bot) startTest(chatID int64, testType quiz.TestType) error {
	session, err := quiz.NewSession(b.loader, testType)
	if err != nil {
		log.Printf("Failed to start %s test: %v", testType, err)
		return b.sendText(chatID, "Noe gikk galt med databasen. Prøv igjen senere.")
	}
	b.sessions[chatID] = session

	if session.Completed() {
		return b.sendText(chatID, "Ingen spørsmål funnet for denne testen.")
	}
	return b.sendQuestion(chatID)
}

// sendQuestion shows the session's current question with its options
func (b *Bot) sendQuestion(chatID int64) error {
	session, ok := b.sessions[chatID]
	if !ok {
		return nil
	}
	question, ok := session.Current()
	if !ok {
		return nil
	}

	position, total := session.Position()
	text := fmt.Sprintf("Spørsmål %d av %d:\n\n%s", position+1, total, question.Question)

	var rows [][]MenuButton
	for i, option := range question.OptionList() {
		rows = append(rows, []MenuButton{{
			Text:         option,
			CallbackData: fmt.Sprintf("%s%d:%d", callbackAnswer, question.ID, i),
		}})
	}
	rows = append(rows, []MenuButton{{Text: "Neste test", CallbackData: callbackNext}})

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(rows)
	return b.send(msg)
}

// handleAnswer records an option press for the current question. Presses
// belonging to an earlier question are ignored.
func (b *Bot) handleAnswer(chatID int64, data string) error {
	session, ok := b.sessions[chatID]
	if !ok {
		return nil
	}
	question, ok := session.Current()
	if !ok {
		return nil
	}

	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	questionID, err := strconv.Atoi(parts[0])
	if err != nil || questionID != question.ID {
		return nil
	}
	optionIdx, err := strconv.Atoi(parts[1])
	options := question.OptionList()
	if err != nil || optionIdx < 0 || optionIdx >= len(options) {
		return nil
	}

	result, ok := session.Submit(options[optionIdx])
	if !ok {
		return nil
	}

	var text string
	if result.Outcome == quiz.Correct {
		text = "Riktig!"
	} else {
		text = fmt.Sprintf("Feil. Riktig svar er: %s", result.CorrectAnswer)
	}

	answered := session.Results()
	text += fmt.Sprintf("\n\n%d av %d riktige så langt.", quiz.CountCorrect(answered), len(answered))
	return b.sendText(chatID, text)
}

// handleNext advances the session, showing the summary on completion
func (b *Bot) handleNext(chatID int64) error {
	session, ok := b.sessions[chatID]
	if !ok {
		return nil
	}

	summary, done := session.Advance()
	if !done {
		return b.sendQuestion(chatID)
	}
	return b.finishTest(chatID, session, summary)
}

// finishTest renders the results table and persists the summary row
func (b *Bot) finishTest(chatID int64, session *quiz.Session, summary []quiz.Result) error {
	var sb strings.Builder
	sb.WriteString("Du har fullført alle testene!\n\n")

	if len(summary) > 0 {
		sb.WriteString("*Dine resultater:*\n")
		for _, r := range summary {
			if r.Outcome == quiz.Correct {
				sb.WriteString(fmt.Sprintf("✅ %s — %s\n", r.Question, r.GivenAnswer))
			} else {
				sb.WriteString(fmt.Sprintf("❌ %s — %s (riktig: %s)\n", r.Question, r.GivenAnswer, r.CorrectAnswer))
			}
		}

		_, total := session.Position()
		record := &models.QuizResult{
			TestType: string(session.TestType()),
			Total:    total,
			Correct:  quiz.CountCorrect(summary),
		}
		if err := b.results.Create(record); err != nil {
			log.Printf("Failed to save quiz result: %v", err)
		}
	}

	return b.sendText(chatID, sb.String())
}

// handleThemeContent shows the texts for one theme
func (b *Bot) handleThemeContent(chatID int64, data string) error {
	themeID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return nil
	}

	texts, err := b.themes.GetTexts(themeID)
	if err != nil {
		log.Printf("Failed to load theme texts: %v", err)
		return b.sendText(chatID, "Noe gikk galt med databasen. Prøv igjen senere.")
	}
	if len(texts) == 0 {
		return b.sendText(chatID, "Ingen tekster funnet for dette temaet.")
	}

	var sb strings.Builder
	for _, text := range texts {
		sb.WriteString(text.Content)
		sb.WriteString("\n\n")
	}
	return b.sendText(chatID, sb.String())
}
