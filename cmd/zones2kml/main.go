package main

import (
	"os"

	"github.com/dmlukin/airzones/internal/config"
	"github.com/dmlukin/airzones/internal/kmlio"
	"github.com/dmlukin/airzones/internal/logger"
	"github.com/dmlukin/airzones/internal/zones"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input       string `short:"i" long:"in"          env:"ZONES_FILE"  description:"Input zones JSON file" default:"zones.json"`
	Output      string `short:"o" long:"out"         env:"KML_FILE"    description:"Output KML file. Writes to stdout if empty"`
	ConfigFile  string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file"`
	Concurrency int    `short:"p" long:"concurrency" env:"CONCURRENCY" description:"Record processing concurrency" default:"8"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = loaded
	}

	descs, err := zones.LoadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to load zone records")
	}

	batch := zones.Process(descs, cfg, opts.Concurrency)

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to create output file")
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Error().Err(closeErr).Str("path", opts.Output).Msg("Failed to close file")
			}
		}()
		out = f
	}

	if err := kmlio.Write(out, batch.Zones, cfg.Style); err != nil {
		log.Fatal().Err(err).Msg("Failed to write KML")
	}

	log.Info().
		Int("processed", len(batch.Zones)).
		Int("failed", batch.Failed).
		Int("skipped", batch.Skipped).
		Msg("KML generated")
}
