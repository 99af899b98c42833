// Package ui launches the journal editor.
package ui

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/audio"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/tui/journal"
)

type UI struct {
	Service  *app.Service
	Settings *config.Settings
	Log      zerolog.Logger
}

// Model builds the editor without running it.
func (u *UI) Model() (*journal.Model, error) {
	if u.Service == nil {
		return nil, errors.New("can not open ui, no service")
	}
	s := u.Settings
	if s == nil {
		s = &config.Settings{Editor: config.EditorSettings{Debounce: config.DefaultDebounce}, Keys: config.DefaultKeys()}
	}
	log := u.Log
	return journal.New(journal.Options{
		Service:  u.Service,
		Debounce: s.Editor.Debounce,
		Keys:     s.Keys,
		NewPlayer: func() audio.Player {
			return audio.NewExecPlayer(s.Audio.File, s.Audio.Command, log)
		},
		Log: log,
	}), nil
}

func (u *UI) Do(ctx context.Context) error {
	m, err := u.Model()
	if err != nil {
		return err
	}
	u.Log.Info().Str("key", m.Key().String()).Msg("editor started")
	defer u.Log.Info().Msg("editor closed")
	return journal.Run(ctx, m)
}
