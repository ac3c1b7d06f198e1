package testlog

import (
	"testing"

	"github.com/enigmadev/gostarter/internal/logging"
)

// Start configures the shared logger for the test profile and records which
// test is running.
func Start(t *testing.T) {
	t.Helper()
	logger := logging.ConfigureTests()
	logger.Debug().Str("test", t.Name()).Msg("test start")
}
