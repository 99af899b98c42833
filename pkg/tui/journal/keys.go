package journal

import (
	"github.com/charmbracelet/bubbles/v2/key"

	"tableflip.dev/daybook/pkg/config"
)

// keyMap binds editor actions to keystrokes.
type keyMap struct {
	Focus      key.Binding
	Blur       key.Binding
	Save       key.Binding
	Clear      key.Binding
	Fullscreen key.Binding
	Playback   key.Binding
	Quit       key.Binding
}

func newKeyMap(ks config.KeySettings) keyMap {
	def := config.DefaultKeys()
	pick := func(keys, fallback []string) []string {
		if len(keys) == 0 {
			return fallback
		}
		return keys
	}
	bind := func(keys []string, help string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return keyMap{
		Focus:      bind(pick(ks.Focus, def.Focus), "focus"),
		Blur:       bind(pick(ks.Blur, def.Blur), "blur"),
		Save:       bind(pick(ks.Save, def.Save), "save"),
		Clear:      bind(pick(ks.Clear, def.Clear), "clear day"),
		Fullscreen: bind(pick(ks.Fullscreen, def.Fullscreen), "zen"),
		Playback:   bind(pick(ks.Playback, def.Playback), "music"),
		Quit:       bind(pick(ks.Quit, def.Quit), "quit"),
	}
}

// helpLine lists the bindings shown in the footer.
func (k keyMap) helpLine() []key.Binding {
	return []key.Binding{k.Focus, k.Blur, k.Save, k.Playback, k.Fullscreen, k.Clear, k.Quit}
}

// suppressed keys never reach the note: the editor is append-only and the
// caret cannot move.
var suppressed = map[string]struct{}{
	"backspace": {},
	"delete":    {},
	"up":        {},
	"down":      {},
	"left":      {},
	"right":     {},
	"home":      {},
	"end":       {},
	"pgup":      {},
	"pgdown":    {},
}
