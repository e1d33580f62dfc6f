// Package config defines the application configuration and its resolution
// chain: command-line flags, then MANDELAREA_* environment variables, then an
// optional YAML file, then built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/logging"
	"github.com/agbru/mandelarea/internal/mandelbrot"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "MANDELAREA_"

// DefaultOutputFile is the result log appended to when --output is not given.
const DefaultOutputFile = "mandelbrot_times.csv"

// AppConfig aggregates the parameters of one benchmark invocation.
type AppConfig struct {
	// Grid and escape test.
	Resolution int
	MaxIter    int
	Threshold  float64
	Epsilon    float64

	// Strategy shapes.
	Jobs    int
	Workers int
	Batches int

	// Runs is the number of times the three phases are repeated.
	Runs int

	OutputFile  string
	MetricsFile string
	ConfigFile  string
	LogLevel    string

	Quiet   bool
	Verbose bool
	Details bool
	NoColor bool
	TUI     bool
}

// Default returns the configuration used when nothing overrides it.
func Default() AppConfig {
	p := mandelbrot.DefaultParams()
	return AppConfig{
		Resolution: p.Resolution,
		MaxIter:    p.MaxIter,
		Threshold:  p.Threshold,
		Epsilon:    p.Epsilon,
		Jobs:       mandelbrot.DefaultJobs,
		Runs:       1,
		OutputFile: DefaultOutputFile,
		LogLevel:   "warn",
	}
}

// ParseConfig parses command-line arguments into an AppConfig, then layers
// the YAML file and environment overrides underneath explicitly set flags.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorOutput: Where usage and parse errors are written.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)
	config := Default()

	fs.IntVar(&config.Resolution, "resolution", config.Resolution, "Grid points per axis (the grid has N×N points).")
	fs.IntVar(&config.Resolution, "n", config.Resolution, "Alias for --resolution.")
	fs.IntVar(&config.MaxIter, "max-iter", config.MaxIter, "Iteration budget per point.")
	fs.Float64Var(&config.Threshold, "threshold", config.Threshold, "Squared-magnitude escape threshold.")
	fs.Float64Var(&config.Epsilon, "epsilon", config.Epsilon, "Offset added to every sample coordinate.")
	fs.IntVar(&config.Jobs, "jobs", config.Jobs, "Row-range jobs submitted by the pool strategy.")
	fs.IntVar(&config.Workers, "workers", config.Workers, "Pool size (0 = number of logical CPUs).")
	fs.IntVar(&config.Batches, "batches", config.Batches, "Reducer batches per dimension (0 = automatic).")
	fs.IntVar(&config.Runs, "runs", config.Runs, "Number of benchmark repetitions; one row is appended per run.")
	fs.StringVar(&config.OutputFile, "output", config.OutputFile, "CSV file the timing row is appended to.")
	fs.StringVar(&config.OutputFile, "o", config.OutputFile, "Alias for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", config.MetricsFile, "Write Prometheus metrics to this file after the run.")
	fs.StringVar(&config.ConfigFile, "config", config.ConfigFile, "YAML file with default values.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the area and its error bound.")
	fs.BoolVar(&config.Quiet, "q", false, "Alias for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print the outside count of every phase.")
	fs.BoolVar(&config.Verbose, "v", false, "Alias for --verbose.")
	fs.BoolVar(&config.Details, "details", false, "Print memory and system usage per phase.")
	fs.BoolVar(&config.Details, "d", false, "Alias for --details.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Show the interactive phase dashboard.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", config.ConfigFile)
	}
	if config.ConfigFile != "" {
		file, err := LoadFile(config.ConfigFile)
		if err != nil {
			return AppConfig{}, apperrors.NewConfigError("cannot load config file: %v", err)
		}
		file.applyTo(&config, fs)
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(out, "Estimates the area of the Mandelbrot set with three strategies\n")
		fmt.Fprintf(out, "(sequential, fixed pool, parallel reducer), checks they agree,\n")
		fmt.Fprintf(out, "and appends their timings to a CSV file.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery option can also be set with %s<NAME> (e.g. %sRESOLUTION).\n", EnvPrefix, EnvPrefix)
	}
}

// Validate checks the configuration for values no strategy can run with.
func (c AppConfig) Validate() error {
	switch {
	case c.Resolution <= 0:
		return apperrors.ValidationError{Field: "resolution", Message: "must be positive"}
	case c.MaxIter <= 0:
		return apperrors.ValidationError{Field: "max-iter", Message: "must be positive"}
	case c.Threshold <= 0:
		return apperrors.ValidationError{Field: "threshold", Message: "must be positive"}
	case c.Jobs <= 0:
		return apperrors.ValidationError{Field: "jobs", Message: "must be positive"}
	case c.Workers < 0:
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	case c.Batches < 0:
		return apperrors.ValidationError{Field: "batches", Message: "must not be negative"}
	case c.Runs <= 0:
		return apperrors.ValidationError{Field: "runs", Message: "must be positive"}
	case c.OutputFile == "":
		return apperrors.ValidationError{Field: "output", Message: "must not be empty"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: err.Error()}
	}
	return nil
}

// ApplyHardwareDefaults resolves values that depend on the host. A zero
// worker count becomes the number of logical CPUs, which is what the pool
// strategy would pick anyway; resolving it here makes it visible in reports.
func ApplyHardwareDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg
}

// ToParams returns the grid parameters of the configuration.
func (c AppConfig) ToParams() mandelbrot.Params {
	return mandelbrot.Params{
		Resolution: c.Resolution,
		MaxIter:    c.MaxIter,
		Threshold:  c.Threshold,
		Epsilon:    c.Epsilon,
	}
}

// ToScannerOptions returns the strategy shapes of the configuration.
func (c AppConfig) ToScannerOptions() mandelbrot.Options {
	return mandelbrot.Options{Jobs: c.Jobs, Workers: c.Workers, Batches: c.Batches}
}
