// Package gcui renders a live heap view while a Heap runs, the way
// internal/ui renders build pipeline progress: a Bubble Tea model fed by a
// channel of events, redrawn on every tick.
package gcui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cheneygc/internal/gc"
)

type watchModel struct {
	title   string
	events  <-chan gc.Event
	latest  gc.Stats
	cycles  int
	done    bool
	width   int
	spinner spinner.Model
	prog    progress.Model
}

type eventMsg gc.Event
type closedMsg struct{}

// NewWatchModel returns a Bubble Tea model that renders heap occupancy and
// collection counts as events arrive on ch.
func NewWatchModel(title string, ch <-chan gc.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &watchModel{title: title, events: ch, width: 80, spinner: sp, prog: prog}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.latest = msg.Snapshot
		if msg.Kind == gc.EventCollectEnd {
			m.cycles++
		}
		return m, tea.Batch(m.listen(), m.occupancyCmd())
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		progModel, cmd := m.prog.Update(msg)
		m.prog = progModel.(progress.Model)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *watchModel) occupancyCmd() tea.Cmd {
	if m.latest.RegionSize == 0 {
		return nil
	}
	used := m.latest.RegionSize - m.latest.AvailableBytes
	return m.prog.SetPercent(float64(used) / float64(m.latest.RegionSize))
}

func (m *watchModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	var b strings.Builder
	header := truncate(m.title, m.width-4)
	if m.done {
		header = "done: " + header
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "resident: %d bytes / %d bytes (%d objects)\n",
		m.latest.CurrentAllocatedBytes, m.latest.RegionSize, m.latest.CurrentAllocatedObjects)
	fmt.Fprintf(&b, "cycles: %d  roots: %d  reads: %d  writes: %d\n",
		m.latest.TotalCycles, m.latest.RootCount, m.latest.Reads, m.latest.Writes)

	if m.latest.RegionSize > 0 && m.latest.AvailableBytes < m.latest.RegionSize/8 {
		b.WriteString(warnStyle.Render("heap pressure: next allocation may trigger a collection"))
		b.WriteString("\n")
	}

	b.WriteString("\n(press q to quit)\n")
	return b.String()
}

func (m *watchModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
