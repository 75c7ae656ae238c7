package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/example/norskbot/internal/quiz"
	"github.com/example/norskbot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates an inline keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// verbResolver is the lookup surface the bot needs for /verb
type verbResolver interface {
	Resolve(input string) (*models.VerbForms, error)
}

// referenceStore serves the themes/texts reference content
type referenceStore interface {
	GetAllThemes() ([]models.Theme, error)
	GetTexts(themeID int64) ([]models.Text, error)
}

// resultStore persists completed quiz summaries
type resultStore interface {
	Create(result *models.QuizResult) error
	GetRecent(limit int) ([]models.QuizResult, error)
}

// Bot represents the Telegram front-end. Each chat owns its own quiz
// session; there is no state shared between chats.
type Bot struct {
	api      *tgbotapi.BotAPI
	config   *BotConfig
	resolver verbResolver
	loader   quiz.Loader
	themes   referenceStore
	results  resultStore
	sessions map[int64]*quiz.Session
}

// New creates a new bot instance
func New(config *BotConfig, resolver verbResolver, loader quiz.Loader, themes referenceStore, results resultStore) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}
	api.Debug = config.Debug

	return &Bot{
		api:      api,
		config:   config,
		resolver: resolver,
		loader:   loader,
		themes:   themes,
		results:  results,
		sessions: make(map[int64]*quiz.Session),
	}, nil
}

// Start runs the update loop until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.handleUpdate(update); err != nil {
				log.Printf("Error handling update: %v", err)
			}
		}
	}
}

// Stop shuts down the update loop
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// handleUpdate dispatches one update to the right handler
func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return b.handleCallback(update.CallbackQuery)
	}
	if update.Message == nil {
		return nil
	}
	if update.Message.IsCommand() {
		return b.handleCommand(update.Message)
	}
	// Plain text is treated as a verb lookup
	return b.handleVerbLookup(update.Message.Chat.ID, update.Message.Text)
}

// send delivers a message, logging delivery failures
func (b *Bot) send(msg tgbotapi.Chattable) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}

// sendText sends a plain Markdown message to a chat
func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return b.send(msg)
}
