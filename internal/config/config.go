package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/enigmadev/gostarter/internal/logging"
)

// DemoConfig configures the demonstration component. Message may be set
// empty on purpose to exercise the failure branch.
type DemoConfig struct {
	Message string
}

// RecordConfig configures the serialized demonstration record.
type RecordConfig struct {
	Name string
	Age  int
}

// LogConfig carries the file-level logging settings; environment variables
// still take precedence at configure time.
type LogConfig struct {
	Level     string
	Timestamp bool
	NoColor   bool
}

type Config struct {
	Name   string
	Demo   DemoConfig
	Record RecordConfig
	Log    LogConfig
}

func Default() Config {
	return Config{
		Name:   "gostarter",
		Demo:   DemoConfig{Message: "Hello from gostarter"},
		Record: RecordConfig{Name: "Enigma", Age: 1020},
		Log:    LogConfig{Level: "info", Timestamp: true, NoColor: false},
	}
}

type fileConfig struct {
	Name string `toml:"name"`
	Demo struct {
		Message string `toml:"message"`
	} `toml:"demo"`
	Record struct {
		Name string `toml:"name"`
		Age  int    `toml:"age"`
	} `toml:"record"`
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
}

// Load reads a TOML config file over the defaults. Only keys defined in the
// file override; everything else keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}
	if meta.IsDefined("demo", "message") {
		cfg.Demo.Message = raw.Demo.Message
	}
	if meta.IsDefined("record", "name") {
		cfg.Record.Name = strings.TrimSpace(raw.Record.Name)
	}
	if meta.IsDefined("record", "age") {
		cfg.Record.Age = raw.Record.Age
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("config missing name")
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("unknown log level: %q", cfg.Log.Level)
	}
	return nil
}
