package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-terminal/internal/config"
)

// New returns a human-readable logger in dev and a JSON logger in prod.
// An unknown level falls back to info.
func New(w io.Writer, stage, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if stage != config.StageProd {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("stage", stage).Logger()
}
