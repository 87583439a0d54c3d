package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/assets"
	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/i18n"
	"github.com/robalobadob/mastermind/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The board owns the terminal, so logs go to a file unless LOG_FILE=-.
	out, closeLog, err := logOutput(cfg.Log.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Log.File).Msg("failed to open log file")
	}
	defer closeLog()
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	help, err := assets.Help(cfg.Game.Lang)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load help text")
	}

	b, err := board.New(cfg.Settings(), log.With().Str("component", "board").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	ui := tui.New(b, i18n.NewPrinter(cfg.Game.Lang), help, log.With().Str("component", "tui").Logger())

	log.Info().Str("lang", i18n.Match(cfg.Game.Lang).String()).Msg("starting mastermind")
	if err := ui.Run(); err != nil {
		closeLog()
		log.Fatal().Err(err).Msg("terminal ui exited")
	}
}

func logOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
