package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/logging"
	"tableflip.dev/daybook/pkg/runner/ui"
	"tableflip.dev/daybook/pkg/store"
)

type setupOptions struct {
	// Fallback keeps going on an in-memory store when the data directory
	// can not be used.
	Fallback bool
	// Demo uses seeded in-memory notes instead of the data directory.
	Demo bool
}

// env carries what every command needs: settings, a logger and the service.
type env struct {
	Settings *config.Settings
	Log      zerolog.Logger
	Service  *app.Service

	closer io.Closer
}

func setup(opts setupOptions) (*env, error) {
	settings, err := config.Load(config.Options{})
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(logging.Options{File: settings.Log.File, Level: settings.Log.Level})
	if err != nil {
		// No log file is no reason to refuse to start.
		log, closer = logging.NewWithWriter(io.Discard, "disabled"), nil
	}
	log.Debug().Str("config", settings.File).Str("path", settings.Path).Msg("settings loaded")

	e := &env{Settings: settings, Log: log, closer: closer}

	if opts.Demo {
		e.Service = &app.Service{Persistence: ui.StaticDemo(nil)}
		return e, nil
	}

	p, err := store.Load(settings)
	if err != nil {
		if !opts.Fallback {
			e.Close()
			return nil, err
		}
		log.Error().Err(err).Str("path", settings.Path).Msg("store unavailable, notes will not persist")
		e.Service = &app.Service{Persistence: store.NewMemory(nil)}
		return e, nil
	}
	e.Service = &app.Service{Persistence: p}
	return e, nil
}

func (e *env) Close() {
	if e.closer == nil {
		return
	}
	if err := e.closer.Close(); err != nil {
		_, _ = os.Stderr.WriteString("daybook: close log: " + err.Error() + "\n")
	}
}
