package orchestration

import (
	"github.com/agbru/mandelarea/internal/config"
	"github.com/agbru/mandelarea/internal/mandelbrot"
)

// ScannersForConfig builds the registry for cfg and returns its scanners in
// benchmark phase order, baseline first.
//
// Parameters:
//   - cfg: The application configuration holding the strategy shapes.
//
// Returns:
//   - []mandelbrot.Scanner: The scanners to run.
//   - error: An error if a strategy of the phase order is not registered.
func ScannersForConfig(cfg config.AppConfig) ([]mandelbrot.Scanner, error) {
	return ScannersFromFactory(mandelbrot.NewDefaultFactory(cfg.ToScannerOptions()))
}

// ScannersFromFactory returns the scanners of factory in the default phase
// order.
func ScannersFromFactory(factory *mandelbrot.Factory) ([]mandelbrot.Scanner, error) {
	return factory.Ordered(mandelbrot.DefaultOrder)
}
