package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger defines configuration options for the structured logger. Level
// is one of "debug", "info", "warn" or "error"; Format is "text" (default)
// or "json". Unknown values fall back to info and text.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat validates and normalises the requested log format.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// New builds a logger writing to w.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	var h slog.Handler
	if c.SlogFormat() == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
