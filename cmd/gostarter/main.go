package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/enigmadev/gostarter/internal/config"
	"github.com/enigmadev/gostarter/internal/demo"
	"github.com/enigmadev/gostarter/internal/logging"
	"github.com/enigmadev/gostarter/internal/record"
	"github.com/enigmadev/gostarter/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config (defaults apply when empty)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gostarter: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := logging.Configure(logging.FromConfig(cfg.Log.Level, cfg.Log.Timestamp, cfg.Log.NoColor))
	logger = logging.RunLogger(logger, cfg.Name, version.Version)
	logger.Info().Msg("starting")

	svc := demo.NewService(demo.WriterSink{W: os.Stdout})
	accepted := svc.DoSomething(cfg.Demo.Message)
	logger.Debug().Bool("accepted", accepted).Msg("demo finished")

	rec := record.Record{Name: cfg.Record.Name, Age: cfg.Record.Age}
	if err := rec.Print(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gostarter: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Msg("done")
}
