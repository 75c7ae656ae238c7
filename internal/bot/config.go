package bot

import (
	"fmt"
	"os"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Telegram API token
	Token string
	// Enable verbose API logging
	Debug bool
	// How many recent quiz results /stats shows
	StatsLimit int
}

// ConfigFromEnv builds the bot configuration from environment variables
func ConfigFromEnv() (*BotConfig, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	return &BotConfig{
		Token:      token,
		Debug:      os.Getenv("BOT_DEBUG") == "true",
		StatsLimit: 10,
	}, nil
}
