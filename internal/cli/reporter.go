package cli

import (
	"fmt"
	"io"

	"github.com/agbru/mandelarea/internal/format"
	"github.com/agbru/mandelarea/internal/orchestration"
	"github.com/agbru/mandelarea/internal/ui"
)

// CLIPhaseReporter shows a spinner while a phase runs and a one-line status
// once it finishes.
type CLIPhaseReporter struct {
	out     io.Writer
	spinner Spinner
}

var _ orchestration.PhaseReporter = (*CLIPhaseReporter)(nil)

// NewCLIPhaseReporter returns a reporter writing to out.
func NewCLIPhaseReporter(out io.Writer) *CLIPhaseReporter {
	return &CLIPhaseReporter{out: out}
}

// PhaseStarted starts a spinner labelled with the phase name.
func (r *CLIPhaseReporter) PhaseStarted(info orchestration.PhaseInfo) {
	r.spinner = newSpinner(r.out)
	r.spinner.UpdateSuffix(fmt.Sprintf(" %s (%d/%d)", info.Name, info.Index+1, info.Total))
	r.spinner.Start()
}

// PhaseFinished stops the spinner and prints the phase outcome.
func (r *CLIPhaseReporter) PhaseFinished(result orchestration.PhaseResult) {
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
	if result.Err != nil {
		fmt.Fprintf(r.out, "%s✗ %-16s%s %v\n", ui.ColorRed(), result.Name, ui.ColorReset(), result.Err)
		return
	}
	fmt.Fprintf(r.out, "%s✓ %-16s%s %s%s%s\n",
		ui.ColorGreen(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
}
