// Package journal implements the append-only daily note editor.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/audio"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/daykey"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

// Options configure New.
type Options struct {
	Service  *app.Service
	Debounce time.Duration
	Keys     config.KeySettings
	// NewPlayer builds the audio handle the first time playback is toggled.
	NewPlayer func() audio.Player
	Log       zerolog.Logger
	Theme     *theme.Theme
}

// Model is the editor state. All mutation happens in Update.
type Model struct {
	ctx      context.Context
	svc      *app.Service
	log      zerolog.Logger
	keys     keyMap
	theme    theme.Theme
	debounce time.Duration

	key  daykey.Key
	text string

	focused    bool
	fullscreen bool
	confirming bool
	status     string

	saveGen uint64
	pending bool

	newPlayer func() audio.Player
	player    audio.Player
	playback  audio.Playback

	width  int
	height int
}

// New builds the editor for today's note. The day key is fixed for the
// lifetime of the model.
func New(opts Options) *Model {
	svc := opts.Service
	if svc == nil {
		svc = &app.Service{Persistence: store.NewMemory(nil)}
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = config.DefaultDebounce
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	m := &Model{
		ctx:       context.Background(),
		svc:       svc,
		log:       opts.Log.With().Str("component", "journal").Logger(),
		keys:      newKeyMap(opts.Keys),
		theme:     th,
		debounce:  debounce,
		key:       svc.Today(),
		focused:   true,
		newPlayer: opts.NewPlayer,
	}
	m.restore()
	return m
}

func (m *Model) restore() {
	text, err := m.svc.Load(m.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err != nil:
		m.log.Debug().Err(err).Str("key", m.key.String()).Msg("restore failed")
		return
	}
	if text != "" {
		m.text = text
		m.forceFocus()
	}
}

// Key returns the day the editor writes to.
func (m *Model) Key() daykey.Key { return m.key }

// Text returns the current note buffer.
func (m *Model) Text() string { return m.text }

// Value returns the raw control value: the rendering prefix followed by the
// buffer.
func (m *Model) Value() string { return rawValue(m.text) }

// Focused reports whether the editor accepts typing.
func (m *Model) Focused() bool { return m.focused }

// Fullscreen reports whether the zen layout is active.
func (m *Model) Fullscreen() bool { return m.fullscreen }

// Confirming reports whether a clear confirmation is pending.
func (m *Model) Confirming() bool { return m.confirming }

// Playing reports the playback intent.
func (m *Model) Playing() bool { return m.playback.Playing() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if d, ok := msg.(events.Describer); ok {
		m.log.Debug().Str("msg", d.Describe()).Msgf("%T", msg)
	}

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		return m, m.forceFocus()
	case tea.MouseClickMsg:
		if m.confirming {
			return m, nil
		}
		return m, m.forceFocus()
	case tea.PasteMsg:
		if m.confirming || !m.focused {
			return m, nil
		}
		return m, m.input(rawValue(m.text) + sanitize(string(v)))
	case tea.KeyPressMsg:
		return m, m.handleKey(v)
	case events.SaveTickMsg:
		if v.Gen == m.saveGen && m.pending {
			_ = m.save()
		}
	case events.PlaybackResultMsg:
		return m, m.playbackResult(v)
	case events.PlaybackEndedMsg:
		if m.playback.End(v.Gen) {
			m.log.Warn().Uint64("gen", v.Gen).Msg("playback stopped")
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.confirming {
		m.confirming = false
		switch msg.String() {
		case "y", "Y":
			return m.clear()
		}
		m.status = ""
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Save):
		_ = m.save()
		return nil
	case key.Matches(msg, m.keys.Clear):
		m.confirming = true
		return nil
	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen
		return m.forceFocus()
	case key.Matches(msg, m.keys.Playback):
		return m.togglePlayback()
	case key.Matches(msg, m.keys.Focus):
		return m.forceFocus()
	case key.Matches(msg, m.keys.Blur):
		return m.blur()
	}

	if _, ok := suppressed[msg.String()]; ok {
		return nil
	}
	if !m.focused {
		return nil
	}
	if msg.String() == "enter" {
		return m.input(rawValue(m.text) + "\n")
	}
	if msg.Text == "" || msg.Mod&(tea.ModCtrl|tea.ModAlt|tea.ModMeta|tea.ModSuper) != 0 {
		return nil
	}
	return m.input(rawValue(m.text) + sanitize(msg.Text))
}

// forceFocus focuses the editor and pins the caret and viewport to the end
// of the text. The view always renders from the end, so only the flag moves.
func (m *Model) forceFocus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd()
}

func (m *Model) blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd()
}

// input applies a new raw control value and restarts the autosave debounce.
func (m *Model) input(raw string) tea.Cmd {
	m.text = stripPrefix(raw)
	m.saveGen++
	m.pending = true
	return tea.Batch(m.forceFocus(), events.SaveTickCmd(m.debounce, m.saveGen))
}

// save writes the buffer under today's key and cancels any pending
// debounced save.
func (m *Model) save() error {
	m.saveGen++
	m.pending = false
	if err := m.svc.Save(m.key, m.text); err != nil {
		m.log.Error().Err(err).Str("key", m.key.String()).Msg("save failed")
		return err
	}
	m.status = "saved " + m.now().Format("15:04:05")
	return nil
}

// clear empties the buffer and removes today's note.
func (m *Model) clear() tea.Cmd {
	m.text = ""
	m.saveGen++
	m.pending = false
	m.status = ""
	cmd := m.forceFocus()
	if err := m.svc.Clear(m.key); err != nil {
		m.log.Error().Err(err).Str("key", m.key.String()).Msg("clear failed")
	}
	return cmd
}

func (m *Model) togglePlayback() tea.Cmd {
	play, gen := m.playback.Toggle()
	if !play {
		if m.player != nil {
			m.player.Pause()
		}
		return nil
	}
	if m.player == nil && m.newPlayer != nil {
		m.player = m.newPlayer()
	}
	player, ctx := m.player, m.ctx
	return func() tea.Msg {
		if player == nil {
			return events.PlaybackResultMsg{Gen: gen, Err: audio.ErrNoPlayer}
		}
		return events.PlaybackResultMsg{Gen: gen, Err: player.Play(ctx)}
	}
}

// playbackResult applies a start outcome. A start that is still wanted is
// watched so the intent reverts if the player stops by itself.
func (m *Model) playbackResult(msg events.PlaybackResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Uint64("gen", msg.Gen).Msg("playback did not start")
	}
	if m.playback.Resolve(msg.Gen, msg.Err) && m.player != nil {
		m.player.Pause()
		return nil
	}
	if msg.Err != nil || msg.Gen != m.playback.Generation() || m.player == nil {
		return nil
	}
	return events.PlaybackEndedCmd(m.player.Done(), msg.Gen)
}

func (m *Model) quit() tea.Cmd {
	m.Shutdown()
	return tea.Quit
}

// Shutdown flushes a pending save and closes the player, so a start still in
// flight fails instead of outliving the editor. It is safe to call more than
// once.
func (m *Model) Shutdown() {
	if m.pending {
		_ = m.save()
	}
	m.playback.Stop()
	if m.player != nil {
		m.player.Close()
	}
}

func (m *Model) now() time.Time {
	if m.svc.Clock != nil {
		return m.svc.Clock()
	}
	return time.Now()
}
