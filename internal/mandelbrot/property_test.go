package mandelbrot

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPartitionCoverage_PropertyBased verifies that for any grid size and
// job count the row ranges cover [0, n) exactly once, in order.
func TestPartitionCoverage_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("ranges are contiguous and cover [0, n)", prop.ForAll(
		func(n, jobs int) bool {
			ranges := Partition(n, jobs)
			if len(ranges) != jobs {
				return false
			}
			next := 0
			for _, r := range ranges {
				if r.Min != next || r.Max < r.Min {
					return false
				}
				next = r.Max
			}
			return next == n
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 400),
	))

	properties.Property("each row belongs to exactly one range", prop.ForAll(
		func(n, jobs int) bool {
			seen := make([]int, n)
			for _, r := range Partition(n, jobs) {
				for i := r.Min; i < r.Max; i++ {
					seen[i]++
				}
			}
			for _, c := range seen {
				if c != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 2000),
		gen.IntRange(1, 300),
	))

	properties.TestingRun(t)
}

// TestEscapesDeterministic_PropertyBased verifies that re-evaluating the
// escape test gives bit-identical results.
func TestEscapesDeterministic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)
	p := DefaultParams()

	properties.Property("Escapes(i, j) is stable and binary", prop.ForAll(
		func(i, j int) bool {
			first := p.Escapes(i, j)
			second := p.Escapes(i, j)
			return first == second && (first == 0 || first == 1)
		},
		gen.IntRange(0, p.Resolution-1),
		gen.IntRange(0, p.Resolution-1),
	))

	properties.TestingRun(t)
}

// TestScannersAgree_PropertyBased runs all three strategies on small random
// grids with random pool and batch shapes and checks they agree.
func TestScannersAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("sequential == pool == reducer", prop.ForAll(
		func(n, maxIter, jobs, workers, batches int) bool {
			p := Params{Resolution: n, MaxIter: maxIter, Threshold: DefaultThreshold, Epsilon: DefaultEpsilon}
			want, _ := Sequential{}.Scan(p)
			pool, err := FixedPool{Jobs: jobs, Workers: workers}.Scan(p)
			if err != nil || pool != want {
				return false
			}
			red, err := Reducer{Batches: batches}.Scan(p)
			return err == nil && red == want
		},
		gen.IntRange(1, 40),
		gen.IntRange(1, 60),
		gen.IntRange(1, 120),
		gen.IntRange(1, 8),
		gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}
