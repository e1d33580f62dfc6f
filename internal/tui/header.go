package tui

import (
	"fmt"
	"time"

	"github.com/agbru/mandelarea/internal/format"
)

// HeaderModel renders the title line with the elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
}

// NewHeaderModel creates a header whose timer starts now.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{startTime: time.Now(), version: version}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Elapsed returns the time since start, or until SetDone.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "Mandelarea Monitor"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	return titleStyle.Render(title) + dimStyle.Render(" | ") +
		durationStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))
}
