package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	displayWindow   = "window"
	displayTerminal = "terminal"

	// terminalLogFile keeps log lines off the screen tcell is drawing on.
	terminalLogFile = "snake.log"
)

// Settings are process level knobs read from the environment. Gameplay
// constants are not among them.
type Settings struct {
	Display  string
	Seed     uint64
	HasSeed  bool
	LogLevel zerolog.Level
	LogFile  string
}

func loadSettings(lookup func(string) string) (Settings, error) {
	getEnv := func(k, def string) string {
		if v := lookup(k); v != "" {
			return v
		}
		return def
	}

	s := Settings{
		Display: getEnv("SNAKE_DISPLAY", displayWindow),
		LogFile: lookup("LOG_FILE"),
	}

	switch s.Display {
	case displayWindow:
	case displayTerminal:
		if s.LogFile == "" {
			s.LogFile = terminalLogFile
		}
	default:
		return Settings{}, fmt.Errorf("SNAKE_DISPLAY: unknown display %q", s.Display)
	}

	if raw := lookup("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("SNAKE_SEED: %w", err)
		}
		s.Seed, s.HasSeed = seed, true
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Settings{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	s.LogLevel = lvl

	return s, nil
}
