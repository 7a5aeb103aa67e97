// Package logging configures the process-wide zerolog logger, grounded on
// smilemakc-mbflow's internal/config.go use of github.com/rs/zerolog/log:
// a console writer for human-facing interactive/CLI output, plain JSON for
// server mode where an operator is expected to ship logs to a collector
// rather than read them directly.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger and returns it. console=true
// selects the human-readable ConsoleWriter used for interactive play;
// console=false emits one JSON object per line, suited to a server
// supervised by systemd/docker and scraped by a log collector.
func Init(console bool, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if console {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	logger = logger.Level(level)
	log.Logger = logger
	return logger
}
