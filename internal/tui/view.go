package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := titleStyle.Render("portwise")
	if m.version != "" {
		title += dimStyle.Render(" " + m.version)
	}

	auto := dimStyle.Render("auto off")
	if m.snapshot.AutoRefresh {
		auto = onStyle.Render("auto on")
	}
	scanState := ""
	if m.snapshot.Scanning {
		scanState = dimStyle.Render("  scanning...")
	}
	lastScan := ""
	if !m.snapshot.LastScan.IsZero() {
		lastScan = dimStyle.Render("  last scan " + m.snapshot.LastScan.Format("15:04:05"))
	}

	fmt.Fprintf(&b, "%s  %s%s%s\n", title, auto, lastScan, scanState)
	fmt.Fprintf(&b, "%s\n", m.input.View())

	detail := m.viewport.View()
	if m.viewport.Width > 0 {
		detail = wrap.String(detail, m.viewport.Width)
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		baseStyle.Render(m.table.View()),
		baseStyle.Render(detail),
	)
	b.WriteString(main)
	b.WriteString("\n")

	status := ""
	switch {
	case m.pending != killNone:
		status = confirmStyle.Render(m.statusMsg)
	case strings.HasPrefix(m.statusMsg, "Could not"):
		status = errorStyle.Render(m.statusMsg)
	default:
		status = m.statusMsg
	}
	if status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}

	footer := footerStyle.Render("q quit · / filter · r rescan · a auto-refresh · l all sockets · k stop · K force kill")
	b.WriteString(footer)

	return b.String()
}
