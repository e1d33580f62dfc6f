// Package format holds the human-readable renderings shared by the CLI and
// the TUI.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// Durations below a millisecond are shown in microseconds, below a second in
// milliseconds with two decimals, and in seconds with three decimals
// otherwise, so that phase timings line up in a table.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}

// FormatSpeedup renders a speedup ratio, e.g. "3.42x". A zero ratio, meaning
// no measurement, is shown as "-".
func FormatSpeedup(ratio float64) string {
	if ratio <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", ratio)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatArea renders an area estimate with its error bound.
func FormatArea(area, errorBound float64) string {
	return fmt.Sprintf("%12.8f +/- %12.8f", area, errorBound)
}
