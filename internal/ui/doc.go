// Package ui holds the color themes shared by the CLI report, the error
// handler and the TUI dashboard. Colors are ANSI escape sequences for plain
// terminal output and lipgloss colors for the dashboard; both switch off
// together under --no-color or NO_COLOR.
package ui
