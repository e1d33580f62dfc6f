package mandelbrot

import (
	pargo "github.com/exascience/pargo/parallel"

	"github.com/agbru/mandelarea/internal/parallel"
)

// Reducer scans the grid with a divide-and-conquer reduction. Rows are split
// recursively into batches; each row batch splits its columns the same way,
// so leaves are rectangular blocks. Partial sums are combined with +.
type Reducer struct {
	// Batches bounds the number of leaves per dimension. Zero lets pargo
	// derive it from GOMAXPROCS.
	Batches int
}

// Name returns StrategyReducer.
func (Reducer) Name() string { return StrategyReducer }

// Scan blocks until the whole reduction tree has resolved.
func (s Reducer) Scan(p Params) (int, error) {
	return reduceBlocks(p.Resolution, s.Batches, p.scanBlock)
}

// blockFunc counts escapes in rows [minRow, maxRow) × columns [minCol, maxCol).
type blockFunc func(minRow, maxRow, minCol, maxCol int) int

// reduceBlocks runs leaf over a two-level split of the n×n index space.
// A panicking leaf contributes nothing and its panic is returned as an error,
// so a partial total is never reported.
func reduceBlocks(n, batches int, leaf blockFunc) (int, error) {
	var errs parallel.ErrorCollector

	total := pargo.RangeReduceInt(0, n, batches, func(minRow, maxRow int) int {
		return pargo.RangeReduceInt(0, n, batches, func(minCol, maxCol int) int {
			return guardedLeaf(&errs, leaf, minRow, maxRow, minCol, maxCol)
		}, add)
	}, add)

	if err := errs.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

func guardedLeaf(errs *parallel.ErrorCollector, leaf blockFunc, minRow, maxRow, minCol, maxCol int) (sum int) {
	var err error
	defer func() { errs.SetError(err) }()
	defer parallel.Recover(&err)
	return leaf(minRow, maxRow, minCol, maxCol)
}

func add(x, y int) int { return x + y }
