package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const windowTitle = "Snake"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("snake exited")
	}
}

func run() error {
	_ = godotenv.Load()
	settings, err := loadSettings(os.Getenv)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(settings.LogLevel)

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	cfg := types.DefaultConfig()
	svc, err := newService(settings, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Quit()

	opts := []game.Option{game.WithLogger(logger)}
	if settings.HasSeed {
		opts = append(opts, game.WithSeed(settings.Seed))
	}
	g, err := game.New(cfg, svc, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(s Settings) (zerolog.Logger, io.Closer, error) {
	if s.LogFile == "" {
		return log.Logger.With().Str("display", s.Display).Logger(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Str("display", s.Display).Logger()
	return logger, f, nil
}

func newService(s Settings, cfg types.Config, logger zerolog.Logger) (ui.Service, error) {
	if s.Display != displayTerminal {
		return ui.NewWindow(windowTitle), nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("terminal display needs stdout to be a terminal")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return ui.NewTerminal(screen, cfg.CellSize, logger), nil
}
