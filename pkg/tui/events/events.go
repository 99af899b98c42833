// Package events defines the Bubble Tea messages exchanged inside the journal
// editor. Every message implements Describe for the debug log.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Describer is implemented by messages that can summarise themselves for logs.
type Describer interface {
	Describe() string
}

// SaveTickMsg fires when a debounce window elapses. Only the tick carrying the
// latest generation triggers a save.
type SaveTickMsg struct {
	Gen uint64
}

// Describe implements the logging helper.
func (m SaveTickMsg) Describe() string {
	return fmt.Sprintf(`gen:%d`, m.Gen)
}

// SaveTickCmd schedules a SaveTickMsg after delay.
func SaveTickCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SaveTickMsg{Gen: gen}
	})
}

// PlaybackResultMsg reports the outcome of an asynchronous playback start.
type PlaybackResultMsg struct {
	Gen uint64
	Err error
}

// Describe implements the logging helper.
func (m PlaybackResultMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`gen:%d err:%q`, m.Gen, m.Err.Error())
	}
	return fmt.Sprintf(`gen:%d state:"started"`, m.Gen)
}

// PlaybackEndedMsg reports that the playback started at Gen stopped.
type PlaybackEndedMsg struct {
	Gen uint64
}

// Describe implements the logging helper.
func (m PlaybackEndedMsg) Describe() string {
	return fmt.Sprintf(`gen:%d state:"ended"`, m.Gen)
}

// PlaybackEndedCmd waits for done and reports a PlaybackEndedMsg for gen.
func PlaybackEndedCmd(done <-chan struct{}, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-done
		return PlaybackEndedMsg{Gen: gen}
	}
}

// FocusMsg indicates the editor just gained focus.
type FocusMsg struct{}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return `state:"focus"`
}

// BlurMsg indicates the editor just lost focus.
type BlurMsg struct{}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return `state:"blur"`
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd() tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd() tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{}
	}
}
