package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/format"
	"github.com/agbru/mandelarea/internal/orchestration"
	"github.com/agbru/mandelarea/internal/ui"
)

// CLIResultPresenter renders reports as colorized terminal tables.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// PresentReport displays the per-phase comparison table followed by the
// area estimate. Verbose adds the outside count of every phase; Details adds
// memory and host usage per phase.
func (p CLIResultPresenter) PresentReport(report orchestration.Report, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	base := time.Duration(0)
	if b, ok := report.Baseline(); ok {
		base = b.Duration
	}

	nameWidth := len("Phase")
	for _, ph := range report.Phases {
		nameWidth = max(nameWidth, len(ph.Name))
	}

	fmt.Fprintf(out, "%s%-*s%s   %s%-10s%s   %s%-8s%s",
		ui.ColorUnderline(), nameWidth, "Phase", ui.ColorReset(),
		ui.ColorUnderline(), "Duration", ui.ColorReset(),
		ui.ColorUnderline(), "Speedup", ui.ColorReset())
	if opts.Verbose {
		fmt.Fprintf(out, "   %sOutside%s", ui.ColorUnderline(), ui.ColorReset())
	}
	fmt.Fprintln(out)

	for _, ph := range report.Phases {
		fmt.Fprintf(out, "%s%-*s%s   %s%-10s%s   %-8s",
			ui.ColorBlue(), nameWidth, ph.Name, ui.ColorReset(),
			ui.ColorYellow(), p.FormatDuration(ph.Duration), ui.ColorReset(),
			format.FormatSpeedup(ph.Speedup(base)))
		if opts.Verbose {
			fmt.Fprintf(out, "   %d", ph.Outside)
		}
		fmt.Fprintln(out)
	}

	if opts.Details {
		displayPhaseDetails(report.Phases, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: %sSuccess.%s All strategies counted %d points outside.\n",
		ui.ColorGreen(), ui.ColorReset(), report.Outside)
	fmt.Fprintf(out, "Area of Mandelbrot set = %s%s%s\n",
		ui.ColorBold(), format.FormatArea(report.Area, report.ErrorBound), ui.ColorReset())
}

// PresentSummary displays mean, standard deviation, min and speedup per
// phase over repeated runs. A single run has nothing to summarize.
func (p CLIResultPresenter) PresentSummary(summary orchestration.Summary, out io.Writer) {
	if summary.Runs < 2 {
		return
	}
	fmt.Fprintf(out, "\n--- Statistics over %d runs ---\n", summary.Runs)
	fmt.Fprintf(out, "%-12s %-10s %-10s %-10s %-8s\n", "Strategy", "Mean", "StdDev", "Min", "Speedup")
	for _, ph := range summary.Phases {
		fmt.Fprintf(out, "%s%-12s%s %-10s %-10s %-10s %-8s\n",
			ui.ColorBlue(), ph.Strategy, ui.ColorReset(),
			p.FormatDuration(ph.Mean), p.FormatDuration(ph.StdDev), p.FormatDuration(ph.Min),
			format.FormatSpeedup(ph.Speedup))
	}
}

// FormatDuration formats a phase duration for the tables.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

func displayPhaseDetails(phases []orchestration.PhaseResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Phase Details ---\n")
	for _, ph := range phases {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorBlue(), ph.Name, ui.ColorReset())
		DisplayMemoryStats(ph.Memory.PeakHeap, ph.Memory.Allocated, ph.Memory.GCCycles, ph.Memory.PauseNs, out)
		fmt.Fprintf(out, "  Host usage:      %s\n", ph.System)
	}
}

// DisplayMemoryStats shows memory statistics of one phase.
func DisplayMemoryStats(peakHeap, allocated uint64, numGC uint32, pauseNs uint64, out io.Writer) {
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(peakHeap))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseNs)/1e6)
}

// CLIColorProvider adapts the active ui theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
