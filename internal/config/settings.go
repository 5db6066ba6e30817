package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"go-crafting/internal/store"
)

// Settings are the runtime options of the game, read from the environment
// and then overridden by command-line flags.
type Settings struct {
	Store       string        `env:"CRAFT_STORE" envDefault:"badger"`
	StorePath   string        `env:"CRAFT_STORE_PATH" envDefault:"data/save"`
	CatalogPath string        `env:"CRAFT_CATALOG"`
	CraftDelay  time.Duration `env:"CRAFT_DELAY" envDefault:"500ms"`
	LogLevel    string        `env:"CRAFT_LOG_LEVEL" envDefault:"info"`
	DebugAddr   string        `env:"CRAFT_DEBUG_ADDR" envDefault:"localhost:6060"`
	FontPath    string        `env:"CRAFT_FONT" envDefault:"assets/fonts/arial.ttf"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Validate checks values that env parsing cannot.
func (s Settings) Validate() error {
	switch s.Store {
	case store.BackendMemory:
	case store.BackendBadger, store.BackendSQLite:
		if strings.TrimSpace(s.StorePath) == "" {
			return fmt.Errorf("store %q needs a path", s.Store)
		}
	default:
		return fmt.Errorf("unknown store backend %q", s.Store)
	}
	if s.CraftDelay < 0 {
		return fmt.Errorf("craft delay must not be negative, got %s", s.CraftDelay)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (s Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}
