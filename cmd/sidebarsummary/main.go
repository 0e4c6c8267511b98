package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/sidebarsummary/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain parses args, runs the tool and returns the process exit code.
func realMain(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("sidebarsummary", flag.ContinueOnError)
	var (
		flags      app.Config
		configPath string
		envFiles   string
		version    bool
	)
	fs.StringVar(&flags.InputPath, "input", app.DefaultInputPath, "Path to the raw sidebar capture log")
	fs.StringVar(&flags.OutputPath, "output", app.DefaultOutputPath, "Path to write the JSON summary")
	fs.StringVar(&configPath, "config", os.Getenv("SIDEBAR_CONFIG"), "Optional YAML or JSON config file")
	fs.StringVar(&envFiles, "env-file", ".env", "Comma-separated dotenv files to load before reading env")
	fs.BoolVar(&flags.Verbose, "v", false, "Verbose logging")
	fs.BoolVar(&version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if version {
		fmt.Fprintln(stdout, app.VersionString())
		return 0
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Error().Err(err).Msg("load env files")
		return 1
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	cfg, err := app.ResolveConfig(flags, explicit, configPath)
	if err != nil {
		log.Error().Err(err).Msg("config")
		return 1
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	return 0
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
