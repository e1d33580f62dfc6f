package config

import (
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors AppConfig for YAML files. Pointer fields distinguish an
// absent key from an explicit zero.
type FileConfig struct {
	Resolution  *int     `yaml:"resolution"`
	MaxIter     *int     `yaml:"max_iter"`
	Threshold   *float64 `yaml:"threshold"`
	Epsilon     *float64 `yaml:"epsilon"`
	Jobs        *int     `yaml:"jobs"`
	Workers     *int     `yaml:"workers"`
	Batches     *int     `yaml:"batches"`
	Runs        *int     `yaml:"runs"`
	Output      *string  `yaml:"output"`
	MetricsFile *string  `yaml:"metrics_file"`
	LogLevel    *string  `yaml:"log_level"`
	Details     *bool    `yaml:"details"`
}

// LoadFile reads and decodes a YAML configuration file. Unknown keys are
// rejected. An empty file yields an empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &fc, nil
}

// applyTo copies every present key into cfg unless the matching flag was
// set on the command line.
func (fc *FileConfig) applyTo(cfg *AppConfig, fs *flag.FlagSet) {
	setInt := func(dst *int, v *int, flags ...string) {
		if v != nil && !isFlagSetAny(fs, flags...) {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64, flags ...string) {
		if v != nil && !isFlagSetAny(fs, flags...) {
			*dst = *v
		}
	}
	setString := func(dst *string, v *string, flags ...string) {
		if v != nil && !isFlagSetAny(fs, flags...) {
			*dst = *v
		}
	}

	setInt(&cfg.Resolution, fc.Resolution, "resolution", "n")
	setInt(&cfg.MaxIter, fc.MaxIter, "max-iter")
	setFloat(&cfg.Threshold, fc.Threshold, "threshold")
	setFloat(&cfg.Epsilon, fc.Epsilon, "epsilon")
	setInt(&cfg.Jobs, fc.Jobs, "jobs")
	setInt(&cfg.Workers, fc.Workers, "workers")
	setInt(&cfg.Batches, fc.Batches, "batches")
	setInt(&cfg.Runs, fc.Runs, "runs")
	setString(&cfg.OutputFile, fc.Output, "output", "o")
	setString(&cfg.MetricsFile, fc.MetricsFile, "metrics-file")
	setString(&cfg.LogLevel, fc.LogLevel, "log-level")
	if fc.Details != nil && !isFlagSetAny(fs, "details", "d") {
		cfg.Details = *fc.Details
	}
}
