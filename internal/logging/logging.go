package logging

import (
	"io"
	"os"
	"time"

	"github.com/jrsteele09/ainote-client/internal/config"
	"github.com/rs/zerolog"
)

// New builds the client logger. DEV gets a human readable console writer,
// every other environment logs JSON lines.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.GetEnv() == "DEV" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", "ainote-client").Logger()
}
