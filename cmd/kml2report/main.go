package main

import (
	"io"
	"os"

	"github.com/dmlukin/airzones/internal/kmlio"
	"github.com/dmlukin/airzones/internal/logger"
	"github.com/dmlukin/airzones/internal/report"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in"     description:"Input KML file. Reads from stdin if empty"`
	Output string `short:"o" long:"out"    description:"Output file. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Report format" choice:"markdown" choice:"html" default:"markdown"`
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

	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to open KML file")
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	marks, err := kmlio.Read(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse KML")
	}

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

	if err := report.Render(out, marks, opts.Format); err != nil {
		log.Fatal().Err(err).Msg("Failed to render report")
	}

	log.Info().
		Int("zones", len(marks)).
		Str("format", opts.Format).
		Msg("Report generated")
}
