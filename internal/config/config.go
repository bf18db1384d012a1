package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-level settings read from the environment once at startup.
// Reloading requires a restart.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	MongoURI     string `env:"MONGODB_URI,required"`
	MongoDB      string `env:"MONGODB_DATABASE" envDefault:"echobot"`

	BotStatus        string `env:"BOT_STATUS" envDefault:"idle"`
	BotActivity      string `env:"BOT_ACTIVITY" envDefault:"EchoStudios"`
	WelcomeChannelID string `env:"WELCOME_CHANNEL_ID"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New loads .env (if present) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
