package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mandelarea/internal/ui"
)

// Dashboard styles, rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	phaseNameStyle   lipgloss.Style
	durationStyle    lipgloss.Style
	successStyle     lipgloss.Style
	errorStyle       lipgloss.Style
	footerKeyStyle   lipgloss.Style
	cpuSparkStyle    lipgloss.Style
	resultValueStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the styles from the current ui theme. Run calls it
// again after the theme has been chosen from the command line.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	phaseNameStyle = lipgloss.NewStyle().Foreground(t.Accent)
	durationStyle = lipgloss.NewStyle().Foreground(t.Warning)
	successStyle = lipgloss.NewStyle().Foreground(t.Success)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	footerKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	cpuSparkStyle = lipgloss.NewStyle().Foreground(t.Accent)
	resultValueStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}
