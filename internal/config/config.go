// Package config loads process configuration from the environment.
//
// Variables (a .env file is loaded by main before Load runs):
//
//	MASTERMIND_ROWS                number of guess rows, 1..12 (default 8)
//	MASTERMIND_EMPTY_ALLOWED       empty hole counts as a colour (default false)
//	MASTERMIND_REPETITION_ALLOWED  secret may repeat colours (default false)
//	MASTERMIND_LANG                UI language, "en" or "hu" (default en)
//	LOG_LEVEL                      zerolog level (default info)
//	LOG_FILE                       log destination, "-" for stderr (default mastermind.log)
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/game"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Game holds the settings for the first game of the session.
type Game struct {
	Rows              int    `env:"ROWS" envDefault:"8"`
	EmptyAllowed      bool   `env:"EMPTY_ALLOWED" envDefault:"false"`
	RepetitionAllowed bool   `env:"REPETITION_ALLOWED" envDefault:"false"`
	Lang              string `env:"LANG" envDefault:"en"`
}

// Log holds logging settings; these are read without the MASTERMIND_ prefix.
type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE" envDefault:"mastermind.log"`
}

// Config is the full process configuration.
type Config struct {
	Game Game
	Log  Log
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c.Game, env.Options{Prefix: "MASTERMIND_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&c.Log); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate enforces the board size the UI supports.
func (c Config) Validate() error {
	if c.Game.Rows < 1 || c.Game.Rows > board.MaxRows {
		return fmt.Errorf("%w: rows must be between 1 and %d, got %d", ErrInvalidConfig, board.MaxRows, c.Game.Rows)
	}
	return nil
}

// Settings converts the game section into engine settings.
func (c Config) Settings() game.Settings {
	return game.Settings{
		MaxAttempts:       c.Game.Rows,
		EmptyAllowed:      c.Game.EmptyAllowed,
		RepetitionAllowed: c.Game.RepetitionAllowed,
	}
}
