package mandelbrot

import (
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()
	p := DefaultParams()
	if p.Resolution != 1000 || p.MaxIter != 1000 || p.Threshold != 4.0 || p.Epsilon != 1e-5 {
		t.Errorf("DefaultParams() = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("DefaultParams should validate, got %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{Resolution: 10, MaxIter: 10, Threshold: 4}, false},
		{"zero resolution", Params{Resolution: 0, MaxIter: 10, Threshold: 4}, true},
		{"negative iterations", Params{Resolution: 10, MaxIter: -1, Threshold: 4}, true},
		{"zero threshold", Params{Resolution: 10, MaxIter: 10, Threshold: 0}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.params.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	t.Parallel()
	p := DefaultParams()

	re, im := p.Point(0, 0)
	if math.Abs(re-(-1.99999)) > 1e-12 || im != 1e-5 {
		t.Errorf("Point(0, 0) = (%v, %v), want (-1.99999, 1e-5)", re, im)
	}

	re, im = p.Point(800, 0)
	if math.Abs(re-1e-5) > 1e-12 || im != 1e-5 {
		t.Errorf("Point(800, 0) = (%v, %v), want the origin plus epsilon", re, im)
	}
}

// TestEscapesGoldenValues pins known interior and exterior points of the
// reference grid.
func TestEscapesGoldenValues(t *testing.T) {
	t.Parallel()
	p := DefaultParams()
	tests := []struct {
		name string
		i, j int
		want int
	}{
		{"origin is inside", 800, 0, 0},
		{"c = -1 is inside the period-2 bulb", 400, 0, 0},
		{"c = -0.5 + 0.5i is inside the main cardioid", 600, 444, 0},
		{"c ≈ 0.4975 on the real axis escapes", 999, 0, 1},
		{"c ≈ 0.4975 + 1.124i escapes", 999, 999, 1},
		{"c ≈ -2 + 1.124i escapes at once", 0, 999, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.Escapes(tt.i, tt.j); got != tt.want {
				re, im := p.Point(tt.i, tt.j)
				t.Errorf("Escapes(%d, %d) [c = %g%+gi] = %d, want %d", tt.i, tt.j, re, im, got, tt.want)
			}
		})
	}
}

// TestEscapesStrictThreshold uses c = -2 exactly: the orbit reaches z = 2 and
// stays there with |z|² == 4, which must not count as escaping.
func TestEscapesStrictThreshold(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 10, MaxIter: 100, Threshold: 4.0, Epsilon: 0}

	re, im := p.Point(0, 0)
	if re != -2.0 || im != 0 {
		t.Fatalf("Point(0, 0) = (%v, %v), want exactly (-2, 0)", re, im)
	}
	if got := p.Escapes(0, 0); got != 0 {
		t.Errorf("Escapes at |z|² == threshold = %d, want 0", got)
	}

	lower := p
	lower.Threshold = 3.999
	if got := lower.Escapes(0, 0); got != 1 {
		t.Errorf("Escapes with threshold just below 4 = %d, want 1", got)
	}
}

func TestEscapesRespectsBudget(t *testing.T) {
	t.Parallel()
	// c ≈ 0.4975 needs a few iterations; a budget of one is not enough.
	p := DefaultParams()
	p.MaxIter = 1
	if got := p.Escapes(999, 0); got != 0 {
		t.Errorf("Escapes with MaxIter=1 = %d, want 0", got)
	}
}

func TestArea(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 100, MaxIter: 10, Threshold: 4}

	tests := []struct {
		name      string
		outside   int
		wantArea  float64
		wantError float64
	}{
		{"nothing outside", 0, 5.625, 0.05625},
		{"everything outside", 10000, 0, 0},
		{"half outside", 5000, 2.8125, 0.028125},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			area, errBound := p.Area(tt.outside)
			if math.Abs(area-tt.wantArea) > 1e-12 {
				t.Errorf("area = %v, want %v", area, tt.wantArea)
			}
			if math.Abs(errBound-tt.wantError) > 1e-12 {
				t.Errorf("error = %v, want %v", errBound, tt.wantError)
			}
		})
	}
}

func TestAreaIsPlausible(t *testing.T) {
	t.Parallel()
	p := Params{Resolution: 200, MaxIter: 200, Threshold: 4, Epsilon: DefaultEpsilon}
	outside, _ := Sequential{}.Scan(p)
	area, _ := p.Area(outside)
	if area < 1.4 || area > 1.8 {
		t.Errorf("area estimate %v is far from the known value ≈ 1.5066", area)
	}
}
