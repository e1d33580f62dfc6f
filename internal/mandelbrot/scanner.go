package mandelbrot

// Scanner counts the grid points that lie outside the Mandelbrot set.
// Every implementation must visit each of the N² coordinates exactly once
// and return the same total for the same Params.
type Scanner interface {
	// Name returns the strategy identifier used in reports and metrics.
	Name() string
	// Scan blocks until the whole grid has been tested and returns the
	// number of escaping points.
	Scan(p Params) (int, error)
}

// Sequential scans the grid row by row on the calling goroutine. It is the
// baseline every concurrent strategy is checked against.
type Sequential struct{}

// Name returns StrategySequential.
func (Sequential) Name() string { return StrategySequential }

// Scan visits every coordinate in row-major order.
func (Sequential) Scan(p Params) (int, error) {
	return p.scanRows(0, p.Resolution), nil
}
