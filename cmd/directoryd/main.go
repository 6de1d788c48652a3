// directoryd is a development certificate directory. It serves the PEM
// certificates found in its configured directory, keyed by node id, over
// the same HTTP API the courier bootstrapper consumes.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"courier/internal/config"
	"courier/internal/directory"
)

func main() {
	configPath := flag.String("config", "", "path to directoryd config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.LoadDirectory(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	srv := directory.NewServer()
	if err := srv.LoadDir(cfg.CertsDir); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.CertsDir).Msg("failed to load certificates")
	}
	log.Info().Int("certs", srv.Len()).Str("listen", cfg.Listen).Msg("directory listening")

	if err := http.ListenAndServe(cfg.Listen, srv.Routes()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
