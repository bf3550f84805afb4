package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xafn/nextstep/internal/gamification"
)

// RunBoard opens the progress dashboard for the given engine.
func RunBoard(ctx context.Context, eng *gamification.Engine, out io.Writer) error {
	m := newBoardModel(ctx, eng)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
