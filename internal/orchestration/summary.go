package orchestration

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PhaseStats summarizes the durations of one strategy across repeated runs.
type PhaseStats struct {
	Strategy string
	Mean     time.Duration
	StdDev   time.Duration
	Min      time.Duration
	Max      time.Duration
	// Speedup is the ratio of the baseline mean to this strategy's mean.
	Speedup float64
}

// Summary aggregates the reports of repeated runs that all succeeded.
type Summary struct {
	Runs   int
	Phases []PhaseStats
	// Area and ErrorBound are identical across runs with the same
	// parameters; they are taken from the first report.
	Area       float64
	ErrorBound float64
}

// Summarize computes per-strategy statistics over reports. Reports are
// expected to share the same phase order; phases are matched by index.
// The standard deviation is the unbiased sample estimate and is zero for a
// single run.
func Summarize(reports []Report) Summary {
	if len(reports) == 0 {
		return Summary{}
	}
	first := reports[0]
	summary := Summary{
		Runs:       len(reports),
		Phases:     make([]PhaseStats, len(first.Phases)),
		Area:       first.Area,
		ErrorBound: first.ErrorBound,
	}

	samples := make([]float64, 0, len(reports))
	for i, phase := range first.Phases {
		samples = samples[:0]
		for _, r := range reports {
			if i < len(r.Phases) {
				samples = append(samples, r.Phases[i].Duration.Seconds())
			}
		}
		mean, std := stat.MeanStdDev(samples, nil)
		if len(samples) < 2 || math.IsNaN(std) {
			std = 0
		}
		summary.Phases[i] = PhaseStats{
			Strategy: phase.Strategy,
			Mean:     seconds(mean),
			StdDev:   seconds(std),
			Min:      seconds(floats.Min(samples)),
			Max:      seconds(floats.Max(samples)),
		}
	}

	if len(summary.Phases) > 0 {
		base := summary.Phases[0].Mean
		for i := range summary.Phases {
			if m := summary.Phases[i].Mean; m > 0 {
				summary.Phases[i].Speedup = base.Seconds() / m.Seconds()
			}
		}
	}
	return summary
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
