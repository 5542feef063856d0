package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./spades.db", cfg.DatabasePath)
	assert.Equal(t, 500, cfg.WinningScore)
	assert.Equal(t, 750*time.Millisecond, cfg.BotDelay)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SPADES_ADDR", ":9999")
	t.Setenv("SPADES_DB_PATH", "/tmp/spades-test.db")
	t.Setenv("SPADES_WINNING_SCORE", "250")
	t.Setenv("SPADES_BOT_DELAY", "10ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/spades-test.db", cfg.DatabasePath)
	assert.Equal(t, 250, cfg.WinningScore)
	assert.Equal(t, 10*time.Millisecond, cfg.BotDelay)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SPADES_WINNING_SCORE", "lots")

	_, err := Load()
	assert.Error(t, err)
}
