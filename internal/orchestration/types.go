package orchestration

import (
	"strconv"
	"strings"
	"time"

	"github.com/agbru/mandelarea/internal/mandelbrot"
	"github.com/agbru/mandelarea/internal/metrics"
	"github.com/agbru/mandelarea/internal/sysmon"
)

// PhaseFinalize is the name of the last phase, which computes the estimate
// and writes the result row.
const PhaseFinalize = "FINALIZE"

// PhaseName returns the phase label of a strategy, e.g. RUN_SEQUENTIAL.
func PhaseName(strategy string) string {
	return "RUN_" + strings.ToUpper(strategy)
}

// PhaseInfo identifies a phase as it starts.
type PhaseInfo struct {
	// Index is the position of the phase in the run, starting at 0.
	Index int
	// Total is the number of scan phases in the run.
	Total int
	// Name is the phase label (RUN_SEQUENTIAL, RUN_POOL, ...).
	Name string
	// Strategy is the scanner name.
	Strategy string
}

// PhaseResult is the outcome of one timed scan phase.
type PhaseResult struct {
	PhaseInfo
	// Outside is the number of escaping points the scanner reported.
	Outside int
	// Duration is the wall-clock time of the scan.
	Duration time.Duration
	// Memory is the runtime memory delta across the scan. Zero unless the
	// driver collects details.
	Memory metrics.MemoryDelta
	// System is a host CPU/memory sample taken after the scan. Zero unless
	// the driver collects details.
	System sysmon.Stats
	// Err is non-nil when the scan failed or disagreed with the baseline.
	Err error
}

// Speedup returns base/d, or 0 when the phase has no duration.
func (r PhaseResult) Speedup(base time.Duration) float64 {
	if r.Duration <= 0 {
		return 0
	}
	return base.Seconds() / r.Duration.Seconds()
}

// ResultRow is the persisted record of one run: the elapsed seconds of every
// scan phase, in phase order.
type ResultRow struct {
	Seconds []float64
}

// Fields formats the row as CSV fields using the shortest decimal
// representation that round-trips.
func (r ResultRow) Fields() []string {
	fields := make([]string, len(r.Seconds))
	for i, s := range r.Seconds {
		fields[i] = strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fields
}

// Report aggregates a run. On failure it holds the phases that completed
// before the error and a zero estimate.
type Report struct {
	Params mandelbrot.Params
	Phases []PhaseResult
	// Outside is the agreed number of escaping points.
	Outside int
	// Area and ErrorBound are the estimate computed in FINALIZE.
	Area       float64
	ErrorBound float64
	Row        ResultRow
}

// Baseline returns the first phase, or false when no phase ran.
func (r Report) Baseline() (PhaseResult, bool) {
	if len(r.Phases) == 0 {
		return PhaseResult{}, false
	}
	return r.Phases[0], true
}
