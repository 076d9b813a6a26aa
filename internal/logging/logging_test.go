package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInitRunsOnce(t *testing.T) {
	Init(zerolog.DebugLevel)
	first := zerolog.GlobalLevel()

	// A second Init must not change the configured level.
	Init(zerolog.ErrorLevel)
	if got := zerolog.GlobalLevel(); got != first {
		t.Errorf("expected level to stay %s after repeated Init, got %s", first, got)
	}
}

func TestComponentLogger(t *testing.T) {
	Init(zerolog.InfoLevel)
	logger := Component("repository")
	// Smoke check: the child logger is usable.
	logger.Debug().Msg("ignored below global level")
}
