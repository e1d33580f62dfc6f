package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/mandelarea/internal/config"
	"github.com/agbru/mandelarea/internal/format"
	"github.com/agbru/mandelarea/internal/sysmon"
	"github.com/agbru/mandelarea/internal/ui"
)

// PrintExecutionConfig displays the grid, the strategy shapes and the host.
func PrintExecutionConfig(cfg config.AppConfig, host sysmon.Host, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Grid %s%d×%d%s, %s%d%s iterations, threshold %s%g%s, epsilon %s%g%s.\n",
		ui.ColorMagenta(), cfg.Resolution, cfg.Resolution, ui.ColorReset(),
		ui.ColorCyan(), cfg.MaxIter, ui.ColorReset(),
		ui.ColorCyan(), cfg.Threshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.Epsilon, ui.ColorReset())
	batches := "auto"
	if cfg.Batches > 0 {
		batches = fmt.Sprint(cfg.Batches)
	}
	fmt.Fprintf(out, "Strategies: pool of %s%d%s workers over %s%d%s jobs, reducer batches %s%s%s.\n",
		ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
		ui.ColorCyan(), cfg.Jobs, ui.ColorReset(),
		ui.ColorCyan(), batches, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if host.Model != "" {
		fmt.Fprintf(out, ", %s", host.Model)
	}
	if host.TotalMemory > 0 {
		fmt.Fprintf(out, ", %s RAM", format.FormatBytes(host.TotalMemory))
	}
	fmt.Fprintf(out, ".\n")
	if cfg.Runs > 1 {
		fmt.Fprintf(out, "Runs: %s%d%s, one row each appended to %s.\n", ui.ColorCyan(), cfg.Runs, ui.ColorReset(), cfg.OutputFile)
	}
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
