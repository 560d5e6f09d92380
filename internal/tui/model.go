package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tvremote/internal/device"
	"github.com/muurk/tvremote/internal/session"
)

// FlashDuration is how long a pressed key stays highlighted
const FlashDuration = 150 * time.Millisecond

// Messages
type snapshotMsg session.Snapshot

type flashDoneMsg struct{ seq uint64 }

type clockMsg struct{}

// Model draws session snapshots and forwards keypresses.
type Model struct {
	send func(session.Key)

	snap  session.Snapshot
	flash device.Action
	seq   uint64

	Keys    session.KeyMap
	Help    help.Model
	HelpKey key.Binding
	Spinner spinner.Model
	Width   int
	Height  int
}

// NewModel creates a model that hands every key to send. send must not
// block.
func NewModel(send func(session.Key)) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Model{
		send: send,
		Keys: session.DefaultKeyMap(),
		Help: help.New(),
		HelpKey: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "all keys"),
		),
		Spinner: s,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// Init starts the spinner and the uptime clock
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, clockTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return clockMsg{} })
}

// Update handles keys, snapshots and timers
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.HelpKey) {
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
		if m.send != nil {
			m.send(session.Key(msg.String()))
		}
		return m, nil

	case snapshotMsg:
		m.snap = session.Snapshot(msg)
		if m.snap.Active.Valid() {
			m.flash = m.snap.Active
			m.seq = m.snap.Seq
			seq := m.seq
			return m, tea.Tick(FlashDuration, func(time.Time) tea.Msg {
				return flashDoneMsg{seq: seq}
			})
		}
		return m, nil

	case flashDoneMsg:
		// A later press restarted the flash
		if msg.seq == m.seq {
			m.flash = 0
		}
		return m, nil

	case clockMsg:
		// Redraw so the detail view's uptime keeps counting
		return m, clockTick()

	case spinner.TickMsg:
		if m.snap.Found() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current snapshot
func (m Model) View() string {
	var b strings.Builder

	if !m.snap.Found() {
		b.WriteString("\n ")
		b.WriteString(m.Spinner.View())
		b.WriteString(" Searching for TVs on the local network...\n")
		b.WriteString(" " + RenderSubtitle("Devices appear here as soon as they answer."))
	} else {
		b.WriteString(renderTabs(m.snap))
		b.WriteString("\n")
		current := m.snap.Current()
		if m.snap.View == session.ViewDetail {
			b.WriteString(renderDetail(current))
		} else {
			b.WriteString(renderSummary(current))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(renderPad(m.Keys, m.flash)))

	footer := m.Help.View(helpKeys{m.Keys, m.HelpKey})
	return RenderApplicationContainer(b.String(), footer, m.Width, m.Height)
}

// helpKeys adds the local help toggle to the session bindings
type helpKeys struct {
	session.KeyMap
	toggle key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.KeyMap.ShortHelp(), h.toggle)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.KeyMap.FullHelp(), []key.Binding{h.toggle})
}
