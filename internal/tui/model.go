package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunmalhotra/portwise/internal/scan"
	"github.com/arjunmalhotra/portwise/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")). // White
			Background(lipgloss.Color("#7D56F4")). // Purple
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")). // Dark Gray
				Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")). // Dimmed Gray
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#585858")). // Dark Gray
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")). // Soft red
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaf5f")). // Orange-amber
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22aa22")). // Green
		Bold(true)

	safetyStyles = map[model.SafetyLevel]lipgloss.Style{
		model.SafetySafe:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22aa22")).Bold(true),
		model.SafetyCaution:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffdf87")).Bold(true),
		model.SafetyDangerous: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
	}
)

type pendingKill int

const (
	killNone pendingKill = iota
	killGraceful
	killForced
)

type MainModel struct {
	coord *scan.Coordinator

	table    table.Model
	input    textinput.Model
	viewport viewport.Model

	snapshot model.Snapshot
	filtered []model.EnrichedRecord

	showAll   bool
	pending   pendingKill
	statusMsg string
	width     int
	height    int
	quitting  bool
	version   string
}

func InitialModel(coord *scan.Coordinator, version string) MainModel {
	columns := []table.Column{
		{Title: "Port", Width: 6},
		{Title: "Proto", Width: 6},
		{Title: "State", Width: 12},
		{Title: "PID", Width: 8},
		{Title: "Process", Width: 20},
		{Title: "Category", Width: 16},
		{Title: "Safety", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle.BorderForeground(lipgloss.Color("#585858"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffaf")). // Light Yellow
		Background(lipgloss.Color("#5f00d7")). // Purple
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search Port, Process, State..."
	ti.CharLimit = 156
	ti.Width = 50
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Blur()

	vp := viewport.New(0, 0)
	vp.YPosition = 0

	return MainModel{
		coord:    coord,
		table:    t,
		input:    ti,
		viewport: vp,
		version:  version,
	}
}

func Start(coord *scan.Coordinator, version string) error {
	if os.Getenv("COLORTERM") == "" {
		os.Setenv("COLORTERM", "truecolor") //nolint:errcheck
	}

	p := tea.NewProgram(InitialModel(coord, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.runScan(),
		waitTick(),
	)
}
