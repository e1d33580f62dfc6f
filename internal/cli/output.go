// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Print* functions write the run banner.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/mandelarea/internal/orchestration"
)

// FormatQuietResult formats the estimate for --quiet: the area and its error
// bound separated by a space, at full precision, for scripting.
func FormatQuietResult(report orchestration.Report) string {
	return strconv.FormatFloat(report.Area, 'f', -1, 64) + " " + strconv.FormatFloat(report.ErrorBound, 'f', -1, 64)
}

// DisplayQuietResult writes FormatQuietResult followed by a newline.
func DisplayQuietResult(out io.Writer, report orchestration.Report) {
	fmt.Fprintln(out, FormatQuietResult(report))
}
