//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"
)

// PhaseReporter is notified as the driver moves through the phases of a run.
// Implementations render progress (spinner, TUI) and must not block for long:
// they are called on the driver's goroutine between timed sections.
type PhaseReporter interface {
	// PhaseStarted is called before the scanner of a phase starts.
	PhaseStarted(info PhaseInfo)
	// PhaseFinished is called once per started phase, including when it
	// failed or disagreed with the baseline (result.Err is then non-nil).
	PhaseFinished(result PhaseResult)
}

// NullPhaseReporter ignores every notification. Useful for quiet mode or
// testing.
type NullPhaseReporter struct{}

// PhaseStarted does nothing.
func (NullPhaseReporter) PhaseStarted(PhaseInfo) {}

// PhaseFinished does nothing.
func (NullPhaseReporter) PhaseFinished(PhaseResult) {}

// ResultSink persists the timing row of a completed run. The driver calls
// Append at most once per run and only after every phase agreed.
type ResultSink interface {
	Append(row ResultRow) error
}

// PhaseRecorder receives measurements for export. metrics.PhaseMetrics is
// the production implementation.
type PhaseRecorder interface {
	ObservePhase(strategy string, seconds float64, outside int)
	RunCompleted()
	MismatchDetected()
}

// ResultPresenter renders the outcome of one or more runs.
type ResultPresenter interface {
	// PresentReport displays the per-phase table and the area estimate.
	PresentReport(report Report, opts PresentationOptions, out io.Writer)
	// PresentSummary displays statistics over repeated runs.
	PresentSummary(summary Summary, out io.Writer)
}

// PresentationOptions configures how a report is rendered.
type PresentationOptions struct {
	Verbose bool
	Details bool
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
