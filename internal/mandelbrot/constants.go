package mandelbrot

// ─────────────────────────────────────────────────────────────────────────────
// Grid and Iteration Defaults
// ─────────────────────────────────────────────────────────────────────────────
//
// These values define one benchmark run. They can be overridden per run
// through config.AppConfig without changing the escape-time contract.

const (
	// DefaultResolution is the number of samples along each grid axis.
	// The grid holds DefaultResolution² points.
	DefaultResolution = 1000

	// DefaultMaxIter is the iteration budget after which a point that has
	// not escaped is counted as inside the set.
	DefaultMaxIter = 1000

	// DefaultThreshold is the squared-magnitude bound. A point escapes the
	// first time |z|² is strictly greater than this value.
	DefaultThreshold = 4.0

	// DefaultEpsilon offsets every sample so that no point lands exactly on
	// the region's lower-left corner.
	DefaultEpsilon = 1.0e-5

	// DefaultJobs is the number of row-range jobs the fixed-pool scanner
	// submits, independent of the grid size and the worker count.
	DefaultJobs = 100
)

// ─────────────────────────────────────────────────────────────────────────────
// Sampled Region
// ─────────────────────────────────────────────────────────────────────────────

const (
	// RealMin is the real coordinate of the region's left edge.
	RealMin = -2.0
	// RealSpan is the width of the region along the real axis.
	RealSpan = 2.5
	// ImagSpan is the height of the region along the imaginary axis. Only
	// the upper half-plane is sampled; the set is symmetric about the real
	// axis, which is why Area doubles the sampled region.
	ImagSpan = 1.125
)

// Strategy identifiers registered by NewDefaultFactory, in benchmark order.
const (
	StrategySequential = "sequential"
	StrategyPool       = "pool"
	StrategyReducer    = "reducer"
)
