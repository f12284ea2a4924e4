package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/dmlukin/airzones/internal/config"
	"github.com/dmlukin/airzones/internal/logger"
	"github.com/dmlukin/airzones/internal/server"
	"github.com/dmlukin/airzones/internal/zones"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string `short:"i" long:"in"     env:"ZONES_FILE"     description:"Input zones JSON file" default:"zones.json"`
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
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

	srvCtx, err := server.NewServerContext(batch.Zones)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server context")
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/zones", srvCtx.HandleZonesList)
	mux.HandleFunc("/zones.geojson", srvCtx.HandleGeoJSON)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("zones_loaded", len(batch.Zones)).
		Int("zones_failed", batch.Failed).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
