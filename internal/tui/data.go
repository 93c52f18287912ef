package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

func (m MainModel) runScan() tea.Cmd {
	coord := m.coord
	return func() tea.Msg {
		coord.Scan()
		return snapshotMsg(coord.Snapshot())
	}
}

func (m MainModel) readSnapshot() tea.Msg {
	return snapshotMsg(m.coord.Snapshot())
}

func (m MainModel) killSelected(force bool) tea.Cmd {
	rec, ok := m.selectedRecord()
	if !ok {
		return nil
	}
	coord := m.coord
	return func() tea.Msg {
		err := coord.Terminate(rec.PortRecord, force)
		return killResultMsg{record: rec.PortRecord, err: err}
	}
}

func (m MainModel) selectedRecord() (model.EnrichedRecord, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return model.EnrichedRecord{}, false
	}
	return m.filtered[idx], true
}

// refreshRows rebuilds the visible rows from the current snapshot, applying
// the listening-only default and the text filter.
func (m *MainModel) refreshRows() {
	filter := strings.ToLower(m.input.Value())

	m.filtered = nil
	var rows []table.Row
	for _, rec := range m.snapshot.Records {
		if !m.showAll && !rec.IsListening() {
			continue
		}

		if filter != "" {
			haystack := strings.ToLower(fmt.Sprintf("%d %s %s %s %d %s",
				rec.Port, rec.Process, rec.Protocol, rec.State, rec.PID, rec.Intel.Category))
			if !strings.Contains(haystack, filter) {
				continue
			}
		}

		m.filtered = append(m.filtered, rec)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.Port),
			rec.Protocol,
			rec.State,
			fmt.Sprintf("%d", rec.PID),
			rec.Process,
			string(rec.Intel.Category),
			string(rec.Intel.Safety),
		})
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
	m.updateDetail()
}

// updateDetail fills the side pane with the selected record's story.
func (m *MainModel) updateDetail() {
	rec, ok := m.selectedRecord()
	if !ok {
		m.viewport.SetContent(dimStyle.Render("No socket selected."))
		return
	}

	var b strings.Builder
	label := promptStyle

	fmt.Fprintf(&b, "%s %s\n", label.Render("Address:"), rec.Address)
	fmt.Fprintf(&b, "%s %s\n", label.Render("User:"), rec.Intel.User)
	if rec.Intel.ParentPID > 0 {
		fmt.Fprintf(&b, "%s %s (pid %d)\n", label.Render("Parent:"), rec.Intel.ParentName, rec.Intel.ParentPID)
	}
	fmt.Fprintf(&b, "%s %s\n", label.Render("Command:"), rec.Intel.FullCommand)

	badge := safetyStyles[rec.Intel.Safety].Render(string(rec.Intel.Safety))
	fmt.Fprintf(&b, "%s %s\n\n", label.Render("Safety:"), badge)

	b.WriteString(rec.Intel.Explanation)

	m.viewport.SetContent(b.String())
}
