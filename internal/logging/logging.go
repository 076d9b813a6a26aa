// Package logging configures process-wide structured logging for liftbase.
//
// Logging setup is deliberately decoupled from repository construction: Init
// runs exactly once per process no matter how many repositories are opened,
// so an embedding host (or binding layer) can call it at startup without
// worrying about double initialization.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel is the environment variable consulted by InitFromEnv.
const EnvLevel = "LIFTBASE_LOG"

var initOnce sync.Once

// Init configures the global zerolog logger exactly once. Subsequent calls
// are no-ops, whatever level they pass.
func Init(level zerolog.Level) {
	initOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		zerolog.SetGlobalLevel(level)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	})
}

// InitFromEnv initializes logging with the level named by $LIFTBASE_LOG
// (debug, info, warn, error, ...). Unset or unparsable values fall back to
// info.
func InitFromEnv() {
	level := zerolog.InfoLevel
	if raw := os.Getenv(EnvLevel); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	Init(level)
}

// Component returns a child of the global logger tagged with a component
// name.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
