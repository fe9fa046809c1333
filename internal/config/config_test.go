package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Spazio", cfg.App.Name)
	assert.Equal(t, ":8480", cfg.Portal.Addr)
	assert.Equal(t, 720*time.Hour, cfg.Portal.LinkTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SPAZIO_DB_PATH", "/tmp/test.db")
	t.Setenv("SPAZIO_PORTAL_ADDR", ":9000")
	t.Setenv("SPAZIO_TELEGRAM_BOT_TOKEN", "bot-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Portal.Addr)
	assert.Equal(t, "bot-token", cfg.Telegram.BotToken)

	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", path)
}
