package tui

import (
	"time"

	"github.com/agbru/mandelarea/internal/orchestration"
)

// PhaseStartedMsg is sent when the driver starts a scan phase.
type PhaseStartedMsg struct {
	Info orchestration.PhaseInfo
}

// PhaseFinishedMsg is sent when a scan phase ends, successfully or not.
type PhaseFinishedMsg struct {
	Result orchestration.PhaseResult
}

// RunCompleteMsg carries the outcome of the whole run.
type RunCompleteMsg struct {
	Report orchestration.Report
	Err    error
}

// TickMsg drives the periodic host sampling.
type TickMsg time.Time

// SysStatsMsg carries a host CPU/memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
