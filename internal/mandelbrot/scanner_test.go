package mandelbrot

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/parallel"
)

func allScanners() []Scanner {
	return []Scanner{
		Sequential{},
		FixedPool{Jobs: DefaultJobs},
		Reducer{},
	}
}

// TestScannersAgree is the end-to-end agreement check on the reference
// shapes: resolution 50 and 1000, with an iteration budget of 50.
func TestScannersAgree(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		long       bool
	}{
		{"resolution 50", 50, false},
		{"resolution 1000", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping full-resolution scan in short mode")
			}
			p := Params{Resolution: tt.resolution, MaxIter: 50, Threshold: 4.0, Epsilon: DefaultEpsilon}

			want, err := Sequential{}.Scan(p)
			if err != nil {
				t.Fatalf("sequential: %v", err)
			}
			if want <= 0 || want >= p.Points() {
				t.Fatalf("sequential total %d is not a plausible outside count for %d points", want, p.Points())
			}

			for _, s := range allScanners()[1:] {
				got, err := s.Scan(p)
				if err != nil {
					t.Fatalf("%s: %v", s.Name(), err)
				}
				if got != want {
					t.Errorf("%s counted %d, sequential counted %d", s.Name(), got, want)
				}
			}
		})
	}
}

func TestFixedPool_JobShapes(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 37, MaxIter: 40, Threshold: 4.0, Epsilon: DefaultEpsilon}
	want, _ := Sequential{}.Scan(p)

	for _, shape := range []FixedPool{
		{Jobs: 1, Workers: 1},
		{Jobs: 7, Workers: 3},
		{Jobs: 37, Workers: 4},
		{Jobs: 100, Workers: 2},
		{Jobs: 0, Workers: 0},
	} {
		got, err := shape.Scan(p)
		if err != nil {
			t.Fatalf("%s: %v", shape, err)
		}
		if got != want {
			t.Errorf("%s counted %d, want %d", shape, got, want)
		}
	}
}

// TestScanPartitioned_DroppedContribution simulates a job that finishes
// without delivering its partial sum. The scan must fail instead of
// reporting a short total.
func TestScanPartitioned_DroppedContribution(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 20, MaxIter: 20, Threshold: 4.0}

	total, err := scanPartitioned(p, 10, 4, func(r RowRange, results chan<- int) error {
		if r.Min == 0 {
			return nil
		}
		results <- p.scanRows(r.Min, r.Max)
		return nil
	})

	var fanIn apperrors.FanInError
	if !errors.As(err, &fanIn) {
		t.Fatalf("err = %v, want FanInError", err)
	}
	if fanIn.Expected != 10 || fanIn.Received != 9 {
		t.Errorf("FanInError = %+v, want 10 expected and 9 received", fanIn)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0 on failure", total)
	}
}

// TestScanPartitioned_DelayedContribution makes one job much slower than
// the rest. Join must still wait for it, so the total is complete.
func TestScanPartitioned_DelayedContribution(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 30, MaxIter: 30, Threshold: 4.0, Epsilon: DefaultEpsilon}
	want, _ := Sequential{}.Scan(p)

	var delivered atomic.Int64
	got, err := scanPartitioned(p, 6, 3, func(r RowRange, results chan<- int) error {
		if r.Min == 0 {
			time.Sleep(50 * time.Millisecond)
		}
		results <- p.scanRows(r.Min, r.Max)
		delivered.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("total = %d, want %d", got, want)
	}
	if delivered.Load() != 6 {
		t.Errorf("delivered = %d, want 6", delivered.Load())
	}
}

func TestScanPartitioned_PanickingJob(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 10, MaxIter: 10, Threshold: 4.0}

	_, err := scanPartitioned(p, 5, 2, func(r RowRange, results chan<- int) error {
		if r.Min == 4 {
			panic("row job failed")
		}
		results <- p.scanRows(r.Min, r.Max)
		return nil
	})

	var pe parallel.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PanicError", err)
	}
}

// TestReduceBlocks_Coverage checks that the two-level split visits every
// cell exactly once for several batch counts.
func TestReduceBlocks_Coverage(t *testing.T) {
	t.Parallel()
	const n = 23
	for _, batches := range []int{0, 1, 2, 5, 23, 64} {
		var visits [n * n]atomic.Int32
		total, err := reduceBlocks(n, batches, func(minRow, maxRow, minCol, maxCol int) int {
			cells := 0
			for i := minRow; i < maxRow; i++ {
				for j := minCol; j < maxCol; j++ {
					visits[i*n+j].Add(1)
					cells++
				}
			}
			return cells
		})
		if err != nil {
			t.Fatalf("batches=%d: %v", batches, err)
		}
		if total != n*n {
			t.Errorf("batches=%d: total = %d, want %d", batches, total, n*n)
		}
		for idx := range visits {
			if c := visits[idx].Load(); c != 1 {
				t.Fatalf("batches=%d: cell (%d, %d) visited %d times", batches, idx/n, idx%n, c)
			}
		}
	}
}

func TestReduceBlocks_PanickingLeaf(t *testing.T) {
	t.Parallel()
	total, err := reduceBlocks(16, 4, func(minRow, maxRow, minCol, maxCol int) int {
		if minRow == 0 && minCol == 0 {
			panic("leaf failed")
		}
		return 1
	})

	var pe parallel.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PanicError", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0 on failure", total)
	}
}

func TestScannerNames(t *testing.T) {
	t.Parallel()
	want := []string{StrategySequential, StrategyPool, StrategyReducer}
	for i, s := range allScanners() {
		if s.Name() != want[i] {
			t.Errorf("scanner %d Name() = %q, want %q", i, s.Name(), want[i])
		}
	}
}
