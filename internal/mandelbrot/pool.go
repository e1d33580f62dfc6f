package mandelbrot

import (
	"fmt"

	"github.com/agbru/mandelarea/internal/parallel"
)

// RowRange is a half-open range [Min, Max) of grid rows assigned to one job.
type RowRange struct {
	Min int
	Max int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int { return r.Max - r.Min }

// Partition splits rows [0, n) into jobs contiguous ranges using
// [id·n/jobs, (id+1)·n/jobs). The ranges cover [0, n) exactly once; when
// jobs does not divide n some ranges are one row wider, and when jobs > n
// some are empty.
func Partition(n, jobs int) []RowRange {
	ranges := make([]RowRange, jobs)
	for id := 0; id < jobs; id++ {
		ranges[id] = RowRange{Min: id * n / jobs, Max: (id + 1) * n / jobs}
	}
	return ranges
}

// FixedPool scans the grid by submitting Jobs row-range jobs to a pool of
// Workers goroutines. Partial sums are sent on a channel shared by all jobs
// and read only after the pool has quiesced.
type FixedPool struct {
	// Jobs is the number of row ranges. Zero means DefaultJobs.
	Jobs int
	// Workers is the pool size. Zero means runtime.NumCPU().
	Workers int
}

// Name returns StrategyPool.
func (FixedPool) Name() string { return StrategyPool }

// String describes the pool configuration.
func (s FixedPool) String() string {
	return fmt.Sprintf("%s(jobs=%d, workers=%d)", StrategyPool, s.jobs(), s.Workers)
}

func (s FixedPool) jobs() int {
	if s.Jobs <= 0 {
		return DefaultJobs
	}
	return s.Jobs
}

// Scan partitions the rows, runs every job on the pool, waits for all
// workers to finish, then folds exactly one partial sum per job.
func (s FixedPool) Scan(p Params) (int, error) {
	return scanPartitioned(p, s.jobs(), s.Workers, func(r RowRange, results chan<- int) error {
		results <- p.scanRows(r.Min, r.Max)
		return nil
	})
}

// rowJob computes the partial sum for one range and delivers it on results.
type rowJob func(r RowRange, results chan<- int) error

// scanPartitioned holds the pool protocol. The results channel is buffered
// to the job count so no job can block on send, which is what makes joining
// the pool before draining deadlock-free.
func scanPartitioned(p Params, jobs, workers int, job rowJob) (int, error) {
	pool := parallel.NewPool(workers)
	results := make(chan int, jobs)

	var submitErr error
	for _, r := range Partition(p.Resolution, jobs) {
		r := r
		if err := pool.Submit(func() error { return job(r, results) }); err != nil {
			submitErr = err
			break
		}
	}

	joinErr := pool.Join()
	close(results)

	if submitErr != nil {
		return 0, submitErr
	}
	if joinErr != nil {
		return 0, joinErr
	}
	return parallel.SumExactly(results, jobs)
}
