package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "GOSTARTER_LOG_LEVEL"
	EnvLogTimestamp = "GOSTARTER_LOG_TIMESTAMP"
	EnvLogNoColor   = "GOSTARTER_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config holds the resolved logging settings. Precedence is defaults, then
// the config file, then environment variables.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// FromConfig maps file-level settings onto the runtime profile. An
// unparseable level keeps the profile default.
func FromConfig(level string, timestamp, noColor bool) Config {
	cfg := DefaultConfig(ProfileRuntime)
	if lvl, ok := ParseLevel(level); ok {
		cfg.Level = lvl
	}
	cfg.Timestamp = timestamp
	cfg.NoColor = noColor
	return cfg
}

var configureOnce sync.Once

// Configure installs the process logger once; later calls return the logger
// installed first. Logs go to stderr so the demonstration output on stdout
// stays clean.
func Configure(cfg Config) zerolog.Logger {
	configureOnce.Do(func() {
		applyEnvOverrides(&cfg)
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
		ctx := zerolog.New(output).With()
		if cfg.Timestamp {
			ctx = ctx.Timestamp()
		}
		log.Logger = ctx.Logger().Level(cfg.Level)
	})
	return log.Logger
}

func ConfigureRuntime() zerolog.Logger {
	return Configure(DefaultConfig(ProfileRuntime))
}

func ConfigureTests() zerolog.Logger {
	return Configure(DefaultConfig(ProfileTest))
}

// RunLogger tags the process logger with the app identity and a unique
// run identifier.
func RunLogger(base zerolog.Logger, app, version string) zerolog.Logger {
	return base.With().
		Str("app", app).
		Str("version", version).
		Str("run_id", uuid.New().String()).
		Logger()
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
