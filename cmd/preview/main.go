package main

import (
	"os"

	"github.com/dmlukin/airzones/internal/config"
	"github.com/dmlukin/airzones/internal/geo"
	"github.com/dmlukin/airzones/internal/logger"
	"github.com/dmlukin/airzones/internal/preview"
	"github.com/dmlukin/airzones/internal/zones"

	"github.com/chai2010/webp"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string `short:"i" long:"in"     env:"ZONES_FILE"  description:"Input zones JSON file" default:"zones.json"`
	Output     string `short:"o" long:"out"    description:"Output WebP image" default:"zones.webp"`
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file"`
	Size       int    `short:"s" long:"size"   description:"Image side length in pixels" default:"1024"`
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

	batch := zones.Process(descs, cfg, 8)
	if batch.Failed > 0 {
		log.Warn().Int("failed", batch.Failed).Msg("Some zone records did not parse")
	}

	rings := make([]geo.Ring, 0, len(batch.Zones))
	for i := range batch.Zones {
		rings = append(rings, batch.Zones[i].Ring)
	}

	img, err := preview.Render(rings, opts.Size)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render preview")
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to create output file")
	}
	defer func() { _ = f.Close() }()

	if err := webp.Encode(f, img, &webp.Options{Lossless: false, Quality: 90}); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode webp")
	}

	log.Info().
		Int("zones", len(batch.Zones)).
		Str("path", opts.Output).
		Msg("Preview rendered")
}
