// internal/config/logger.go
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps "debug", "info", "warn", "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return l, nil
}

// NewLogger builds the process logger. The level is read through lvl so a
// config reload can change it.
func NewLogger(cfg LogConfig, w io.Writer, lvl *slog.LevelVar) *slog.Logger {
	if l, err := ParseLevel(cfg.Level); err == nil {
		lvl.Set(l)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
