package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

type snapshotMsg model.Snapshot

type killResultMsg struct {
	record model.PortRecord
	err    error
}

type tickMsg time.Time

// The coordinator publishes snapshots on its own cadence (auto-refresh,
// post-kill rescans), so the view polls the published state once a second
// rather than owning any scan scheduling itself.
func waitTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.quitting {
			return m, tea.Batch(m.readSnapshot, waitTick())
		}
		return m, waitTick()

	case snapshotMsg:
		snap := model.Snapshot(msg)
		if !snap.LastScan.Equal(m.snapshot.LastScan) || snap.AutoRefresh != m.snapshot.AutoRefresh || snap.Scanning != m.snapshot.Scanning {
			m.snapshot = snap
			m.refreshRows()
		}
		return m, nil

	case killResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Could not stop %s (pid %d): %v", msg.record.Process, msg.record.PID, msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("Signal sent to %s (pid %d)", msg.record.Process, msg.record.PID)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// confirmation prompt eats everything until answered
	if m.pending != killNone {
		switch msg.String() {
		case "y", "Y":
			force := m.pending == killForced
			m.pending = killNone
			return m, m.killSelected(force)
		case "n", "N", "esc":
			m.pending = killNone
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.input.Focused() {
		switch msg.String() {
		case "esc":
			m.input.Blur()
			m.input.SetValue("")
			m.refreshRows()
		case "enter":
			m.input.Blur()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.refreshRows()
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.input.Focus()
		m.statusMsg = ""
		return m, nil

	case "r":
		m.statusMsg = ""
		return m, m.runScan()

	case "a":
		if m.coord.ToggleAutoRefresh() {
			m.statusMsg = "Auto-refresh on"
		} else {
			m.statusMsg = "Auto-refresh off"
		}
		return m, m.readSnapshot

	case "l":
		m.showAll = !m.showAll
		m.refreshRows()
		return m, nil

	case "k", "K":
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		if msg.String() == "K" {
			m.pending = killForced
			m.statusMsg = fmt.Sprintf("Force kill %s (pid %d)? y/n", rec.Process, rec.PID)
		} else {
			m.pending = killGraceful
			m.statusMsg = fmt.Sprintf("Stop %s (pid %d)? y/n", rec.Process, rec.PID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != prev {
		m.updateDetail()
	}
	return m, cmd
}

func (m *MainModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	available := m.width - 6
	if available < 20 {
		available = 20
	}
	tableWidth := int(float64(available) * 0.62)
	detailWidth := available - tableWidth

	m.table.SetWidth(tableWidth)
	m.table.SetHeight(m.height - 8)
	m.viewport.Width = detailWidth
	m.viewport.Height = m.height - 8

	m.updateDetail()
}
