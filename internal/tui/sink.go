package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tvremote/internal/session"
)

// Sink delivers snapshots to a Bubble Tea program.
type Sink struct {
	program *tea.Program
}

// NewSink wraps p. Render blocks until p's event loop accepts the
// snapshot, and is a no-op once p has exited.
func NewSink(p *tea.Program) *Sink {
	return &Sink{program: p}
}

// Render implements session.Renderer
func (s *Sink) Render(snap session.Snapshot) {
	s.program.Send(snapshotMsg(snap))
}

// NewProgram creates the full-screen remote program.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(m, opts...)
}
