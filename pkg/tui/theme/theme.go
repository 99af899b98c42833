package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the journal editor.
type Theme struct {
	Header HeaderTheme
	Editor EditorTheme
	Footer FooterTheme
}

// HeaderTheme styles the date line and the playback indicator.
type HeaderTheme struct {
	Date    lipgloss.Style
	Playing lipgloss.Style
	Paused  lipgloss.Style
}

// EditorTheme styles the note body.
type EditorTheme struct {
	Focused lipgloss.Style
	Blurred lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Confirm lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Date:    lipgloss.NewStyle().Bold(true),
			Playing: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Editor: EditorTheme{
			Focused: lipgloss.NewStyle(),
			Blurred: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Confirm: lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		},
	}
}
