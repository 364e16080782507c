package tui

import "github.com/charmbracelet/lipgloss"

const (
	nameColWidth   = 24
	hostColWidth   = 32
	formLabelWidth = 10
)

var (
	// Colours
	colAccent   = lipgloss.Color("#7C3AED") // purple
	colSearch   = lipgloss.Color("#F59E0B") // amber
	colGroup    = lipgloss.Color("#10B981") // emerald
	colError    = lipgloss.Color("#EF4444") // red
	colText     = lipgloss.Color("#E5E7EB")
	colSubtext  = lipgloss.Color("#6B7280")
	colBorder   = lipgloss.Color("#374151")
	colSelected = lipgloss.Color("#1F2937")

	styleHeader = lipgloss.NewStyle().
			Background(colAccent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	styleSearch = lipgloss.NewStyle().
			Foreground(colSearch).
			PaddingLeft(1)

	styleGroupBar = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colBorder)

	styleGroup = lipgloss.NewStyle().
			Foreground(colSubtext).
			Padding(0, 1)

	styleGroupSelected = lipgloss.NewStyle().
				Background(colGroup).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				Padding(0, 1)

	styleRow = lipgloss.NewStyle().
			Foreground(colText).
			PaddingLeft(1)

	styleRowSelected = lipgloss.NewStyle().
				Background(colSelected).
				Foreground(colText).
				Bold(true).
				PaddingLeft(1)

	styleRowMeta = lipgloss.NewStyle().
			Foreground(colSubtext)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colSubtext).
			PaddingLeft(3)

	styleForm = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colAccent).
			Padding(0, 1)

	styleFormTitle = lipgloss.NewStyle().
			Foreground(colAccent).
			Bold(true)

	styleFormLabel = lipgloss.NewStyle().
			Foreground(colSubtext).
			Width(formLabelWidth)

	styleFormLabelFocused = lipgloss.NewStyle().
				Foreground(colSearch).
				Bold(true).
				Width(formLabelWidth)

	styleStatus = lipgloss.NewStyle().
			Foreground(colError).
			PaddingLeft(1)

	styleHelp = lipgloss.NewStyle().
			Background(colSelected).
			Foreground(colSubtext).
			PaddingLeft(1)

	styleHelpForm = lipgloss.NewStyle().
			Background(lipgloss.Color("#3D2E0A")).
			Foreground(lipgloss.Color("#FDE68A")).
			PaddingLeft(1)
)
