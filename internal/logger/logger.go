// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/config"
)

// Init sets the global level and output. Production logs JSON to stdout;
// every other environment gets the human readable console writer.
func Init(env config.Environment, level string) {
	InitWithWriter(env, level, os.Stdout)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(env config.Environment, level string, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(level))

	out := w
	if env != config.Production {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: env == config.CI}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("env", string(env)).Logger()
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
