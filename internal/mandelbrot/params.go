package mandelbrot

import "fmt"

// Params fixes the grid and the escape-time test for one run. A Params value
// is immutable once built and safe to share between goroutines.
type Params struct {
	// Resolution is N: the grid has N×N points, indexed 0 ≤ i, j < N.
	Resolution int
	// MaxIter is the iteration budget per point.
	MaxIter int
	// Threshold is the squared-magnitude escape bound.
	Threshold float64
	// Epsilon is added to both coordinates of every sample.
	Epsilon float64
}

// DefaultParams returns the parameters of the reference benchmark.
func DefaultParams() Params {
	return Params{
		Resolution: DefaultResolution,
		MaxIter:    DefaultMaxIter,
		Threshold:  DefaultThreshold,
		Epsilon:    DefaultEpsilon,
	}
}

// Validate reports the first parameter that cannot describe a grid.
func (p Params) Validate() error {
	switch {
	case p.Resolution <= 0:
		return fmt.Errorf("resolution must be positive, got %d", p.Resolution)
	case p.MaxIter <= 0:
		return fmt.Errorf("max iterations must be positive, got %d", p.MaxIter)
	case p.Threshold <= 0:
		return fmt.Errorf("threshold must be positive, got %g", p.Threshold)
	}
	return nil
}

// Points returns the number of samples in the grid.
func (p Params) Points() int {
	return p.Resolution * p.Resolution
}

// Point maps grid coordinate (i, j) to the complex constant c.
func (p Params) Point(i, j int) (re, im float64) {
	n := float64(p.Resolution)
	re = RealMin + RealSpan*float64(i)/n + p.Epsilon
	im = ImagSpan*float64(j)/n + p.Epsilon
	return re, im
}

// Escapes runs the escape-time test for grid coordinate (i, j) and returns 1
// if the orbit of z ← z² + c leaves the threshold within MaxIter iterations,
// 0 otherwise. A squared magnitude equal to Threshold has not escaped.
func (p Params) Escapes(i, j int) int {
	cr, ci := p.Point(i, j)
	zr, zi := cr, ci
	for iter := 0; iter < p.MaxIter; iter++ {
		t := zr*zr - zi*zi + cr
		zi = zr*zi*2 + ci
		zr = t
		if zr*zr+zi*zi > p.Threshold {
			return 1
		}
	}
	return 0
}

// scanRows sums Escapes over rows [minRow, maxRow) and every column.
func (p Params) scanRows(minRow, maxRow int) int {
	return p.scanBlock(minRow, maxRow, 0, p.Resolution)
}

// scanBlock sums Escapes over rows [minRow, maxRow) × columns [minCol, maxCol).
func (p Params) scanBlock(minRow, maxRow, minCol, maxCol int) int {
	sum := 0
	for i := minRow; i < maxRow; i++ {
		for j := minCol; j < maxCol; j++ {
			sum += p.Escapes(i, j)
		}
	}
	return sum
}

// Area estimates the area of the Mandelbrot set from the number of points
// found outside it, and returns the error bound area/N alongside.
func (p Params) Area(outside int) (area, errorBound float64) {
	total := float64(p.Points())
	area = 2.0 * RealSpan * ImagSpan * (total - float64(outside)) / total
	errorBound = area / float64(p.Resolution)
	return area, errorBound
}
