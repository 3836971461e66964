// Command craftsolve-serve exposes the solver over HTTP/WebSocket so a
// remote client can stream per-generation progress instead of blocking
// on a single CLI run.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/craftsim/craftsolve/evolution"
	"github.com/craftsim/craftsolve/internal/config"
	"github.com/craftsim/craftsolve/internal/stepserver"
	"github.com/craftsim/craftsolve/internal/synthio"
)

var (
	addr       string
	configPath string
)

func init() {
	flag.StringVar(&addr, "addr", ":8085", "listen address")
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
}

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	stepserver.DriverFactory = func(r *http.Request) (*evolution.Driver, error) {
		synth, err := synthio.Decode(r.Body)
		if err != nil {
			return nil, err
		}
		return evolution.NewDriver(cfg, synth), nil
	}

	srv := stepserver.New(logger)
	logger.Info().Str("addr", addr).Msg("craftsolve-serve listening")
	if err := http.ListenAndServe(addr, srv.Router); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
