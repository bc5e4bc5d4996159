package util

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Outside production the
// output is human readable; in production it is one JSON object per line.
// An unknown level falls back to info.
func InitLogger(level, appEnv string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if appEnv != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: appEnv == "test"}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return log.Logger
}
