// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// Aliased flags register under both names.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the prefix) to the flag name(s) it
// shadows and a function that applies the value. Unparseable values are
// ignored and the previous value is kept.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func floatOverride(dst func(*AppConfig) *float64) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"RESOLUTION", []string{"resolution", "n"}, intOverride(func(c *AppConfig) *int { return &c.Resolution })},
	{"MAX_ITER", []string{"max-iter"}, intOverride(func(c *AppConfig) *int { return &c.MaxIter })},
	{"THRESHOLD", []string{"threshold"}, floatOverride(func(c *AppConfig) *float64 { return &c.Threshold })},
	{"EPSILON", []string{"epsilon"}, floatOverride(func(c *AppConfig) *float64 { return &c.Epsilon })},
	{"JOBS", []string{"jobs"}, intOverride(func(c *AppConfig) *int { return &c.Jobs })},
	{"WORKERS", []string{"workers"}, intOverride(func(c *AppConfig) *int { return &c.Workers })},
	{"BATCHES", []string{"batches"}, intOverride(func(c *AppConfig) *int { return &c.Batches })},
	{"RUNS", []string{"runs"}, intOverride(func(c *AppConfig) *int { return &c.Runs })},

	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},

	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DETAILS", []string{"details", "d"}, boolOverride(func(c *AppConfig) *bool { return &c.Details })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
	{"TUI", []string{"tui"}, boolOverride(func(c *AppConfig) *bool { return &c.TUI })},
}

// parseBoolEnv accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive). Anything else returns defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies MANDELAREA_* values for every flag that was not
// set on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
