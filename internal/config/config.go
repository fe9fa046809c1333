package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name   string `envconfig:"SPAZIO_APP_NAME" default:"Spazio"`
		DBPath string `envconfig:"SPAZIO_DB_PATH" default:""`
	}

	Telegram struct {
		BotToken string `envconfig:"SPAZIO_TELEGRAM_BOT_TOKEN"`
		ChatID   string `envconfig:"SPAZIO_TELEGRAM_CHAT_ID"`
	}

	Portal struct {
		Addr        string        `envconfig:"SPAZIO_PORTAL_ADDR" default:":8480"`
		Secret      string        `envconfig:"SPAZIO_PORTAL_SECRET"`
		LinkTTL     time.Duration `envconfig:"SPAZIO_PORTAL_LINK_TTL" default:"720h"`
		AllowOrigin string        `envconfig:"SPAZIO_PORTAL_ALLOW_ORIGIN" default:"*"`
	}
}

// DatabasePath resolves the SQLite file location, defaulting to the user's
// home directory.
func (c *Config) DatabasePath() (string, error) {
	if c.App.DBPath != "" {
		return c.App.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".spazio", "spazio.db"), nil
}

// Load reads configuration from the environment, after sourcing an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
