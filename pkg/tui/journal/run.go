package journal

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Run launches the editor and blocks until it exits. Cancelling ctx stops
// the program; pending work is flushed either way.
func Run(ctx context.Context, m *Model) error {
	m.ctx = ctx
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	m.Shutdown()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
