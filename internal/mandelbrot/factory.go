package mandelbrot

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultOrder lists the registered strategies in benchmark phase order.
// The sequential baseline always comes first.
var DefaultOrder = []string{StrategySequential, StrategyPool, StrategyReducer}

// Options configures the concurrent strategies built by NewDefaultFactory.
type Options struct {
	Jobs    int
	Workers int
	Batches int
}

// Factory is a registry of scanners keyed by strategy name. New strategies
// are added with Register and picked up by the driver without changes.
type Factory struct {
	mu       sync.RWMutex
	scanners map[string]Scanner
}

// NewFactory returns an empty registry.
func NewFactory() *Factory {
	return &Factory{scanners: make(map[string]Scanner)}
}

// NewDefaultFactory registers the sequential, fixed-pool and reducer
// strategies.
func NewDefaultFactory(opts Options) *Factory {
	f := NewFactory()
	f.MustRegister(Sequential{})
	f.MustRegister(FixedPool{Jobs: opts.Jobs, Workers: opts.Workers})
	f.MustRegister(Reducer{Batches: opts.Batches})
	return f
}

// Register adds s under s.Name(). Registering the same name twice fails.
func (f *Factory) Register(s Scanner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := s.Name()
	if _, exists := f.scanners[name]; exists {
		return fmt.Errorf("scanner %q already registered", name)
	}
	f.scanners[name] = s
	return nil
}

// MustRegister is like Register but panics on error.
func (f *Factory) MustRegister(s Scanner) {
	if err := f.Register(s); err != nil {
		panic(err)
	}
}

// Get returns the scanner registered under name.
func (f *Factory) Get(name string) (Scanner, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.scanners[name]
	if !ok {
		return nil, fmt.Errorf("unknown scanner %q", name)
	}
	return s, nil
}

// MustGet is like Get but panics on error.
func (f *Factory) MustGet(name string) Scanner {
	s, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.scanners))
	for name := range f.scanners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ordered returns the scanners named in order, failing on the first unknown
// name.
func (f *Factory) Ordered(order []string) ([]Scanner, error) {
	scanners := make([]Scanner, 0, len(order))
	for _, name := range order {
		s, err := f.Get(name)
		if err != nil {
			return nil, err
		}
		scanners = append(scanners, s)
	}
	return scanners, nil
}
