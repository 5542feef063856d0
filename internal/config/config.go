package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the server configuration, decoded from the environment.
// A .env file in the working directory is loaded automatically.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"SPADES_ADDR,default=:8080"`

	// DatabasePath is the sqlite file storing finished game results.
	DatabasePath string `env:"SPADES_DB_PATH,default=./spades.db"`

	// WinningScore ends a game when a team's cumulative score reaches it.
	WinningScore int `env:"SPADES_WINNING_SCORE,default=500"`

	// BotDelay paces automated seats so humans can follow the play. It is
	// purely presentational; game state is consistent regardless.
	BotDelay time.Duration `env:"SPADES_BOT_DELAY,default=750ms"`
}

// Load decodes the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
