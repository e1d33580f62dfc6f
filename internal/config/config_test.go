package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/mandelbrot"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("mandelarea", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
	if cfg.Resolution != 1000 || cfg.MaxIter != 1000 || cfg.Jobs != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.OutputFile != "mandelbrot_times.csv" {
		t.Errorf("OutputFile = %q, want mandelbrot_times.csv", cfg.OutputFile)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		args  []string
		check func(AppConfig) bool
	}{
		{"long resolution", []string{"--resolution", "200"}, func(c AppConfig) bool { return c.Resolution == 200 }},
		{"short resolution", []string{"-n", "300"}, func(c AppConfig) bool { return c.Resolution == 300 }},
		{"max-iter", []string{"--max-iter", "50"}, func(c AppConfig) bool { return c.MaxIter == 50 }},
		{"threshold", []string{"--threshold", "9.5"}, func(c AppConfig) bool { return c.Threshold == 9.5 }},
		{"epsilon zero", []string{"--epsilon", "0"}, func(c AppConfig) bool { return c.Epsilon == 0 }},
		{"jobs", []string{"--jobs", "7"}, func(c AppConfig) bool { return c.Jobs == 7 }},
		{"workers", []string{"--workers", "3"}, func(c AppConfig) bool { return c.Workers == 3 }},
		{"batches", []string{"--batches", "16"}, func(c AppConfig) bool { return c.Batches == 16 }},
		{"runs", []string{"--runs", "5"}, func(c AppConfig) bool { return c.Runs == 5 }},
		{"output alias", []string{"-o", "x.csv"}, func(c AppConfig) bool { return c.OutputFile == "x.csv" }},
		{"quiet alias", []string{"-q"}, func(c AppConfig) bool { return c.Quiet }},
		{"details", []string{"--details"}, func(c AppConfig) bool { return c.Details }},
		{"log level", []string{"--log-level", "debug"}, func(c AppConfig) bool { return c.LogLevel == "debug" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig("mandelarea", tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("ParseConfig(%v) error = %v", tt.args, err)
			}
			if !tt.check(cfg) {
				t.Errorf("ParseConfig(%v) = %+v", tt.args, cfg)
			}
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"zero resolution", []string{"-n", "0"}, "resolution"},
		{"negative max-iter", []string{"--max-iter", "-1"}, "max-iter"},
		{"zero threshold", []string{"--threshold", "0"}, "threshold"},
		{"zero jobs", []string{"--jobs", "0"}, "jobs"},
		{"negative workers", []string{"--workers", "-2"}, "workers"},
		{"negative batches", []string{"--batches", "-1"}, "batches"},
		{"zero runs", []string{"--runs", "0"}, "runs"},
		{"empty output", []string{"--output", ""}, "output"},
		{"bad log level", []string{"--log-level", "loud"}, "log-level"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseConfig("mandelarea", tt.args, &bytes.Buffer{})
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ParseConfig(%v) error = %v, want ValidationError", tt.args, err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
			if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
				t.Errorf("ExitCodeFor = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	_, err := ParseConfig("mandelarea", []string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(out.String(), "Usage: mandelarea") {
		t.Errorf("usage output missing header:\n%s", out.String())
	}
	if !strings.Contains(out.String(), EnvPrefix+"RESOLUTION") {
		t.Errorf("usage output does not mention environment variables")
	}
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig("mandelarea", []string{"--bogus"}, &bytes.Buffer{})
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Fatalf("ParseConfig(--bogus) error = %v, want a configuration error", err)
	}
}

// Environment tests cannot run in parallel because t.Setenv mutates the process.

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"RESOLUTION", "250")
	t.Setenv(EnvPrefix+"THRESHOLD", "8")
	t.Setenv(EnvPrefix+"JOBS", "12")
	t.Setenv(EnvPrefix+"DETAILS", "yes")
	t.Setenv(EnvPrefix+"OUTPUT", "env.csv")
	t.Setenv(EnvPrefix+"MAX_ITER", "not-a-number")

	cfg, err := ParseConfig("mandelarea", []string{"--jobs", "20"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Resolution != 250 {
		t.Errorf("Resolution = %d, want 250 from env", cfg.Resolution)
	}
	if cfg.Threshold != 8 {
		t.Errorf("Threshold = %v, want 8 from env", cfg.Threshold)
	}
	if cfg.Jobs != 20 {
		t.Errorf("Jobs = %d, want 20 (flag beats env)", cfg.Jobs)
	}
	if !cfg.Details {
		t.Error("Details = false, want true from env")
	}
	if cfg.OutputFile != "env.csv" {
		t.Errorf("OutputFile = %q, want env.csv", cfg.OutputFile)
	}
	if cfg.MaxIter != mandelbrot.DefaultMaxIter {
		t.Errorf("MaxIter = %d, want default for unparseable env", cfg.MaxIter)
	}
}

func TestParseConfig_FileLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	content := "resolution: 400\nmax_iter: 300\njobs: 9\nruns: 2\noutput: file.csv\ndetails: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix+"MAX_ITER", "350")

	cfg, err := ParseConfig("mandelarea", []string{"--config", path, "--jobs", "11"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Resolution != 400 {
		t.Errorf("Resolution = %d, want 400 from file", cfg.Resolution)
	}
	if cfg.MaxIter != 350 {
		t.Errorf("MaxIter = %d, want 350 (env beats file)", cfg.MaxIter)
	}
	if cfg.Jobs != 11 {
		t.Errorf("Jobs = %d, want 11 (flag beats file)", cfg.Jobs)
	}
	if cfg.Runs != 2 || cfg.OutputFile != "file.csv" || !cfg.Details {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestParseConfig_FileFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	if err := os.WriteFile(path, []byte("resolution: 64\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix+"CONFIG", path)

	cfg, err := ParseConfig("mandelarea", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Resolution != 64 || cfg.ConfigFile != path {
		t.Errorf("cfg = %+v, want resolution 64 from %s", cfg, path)
	}
}

func TestParseConfig_BadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	typo := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(typo, []byte("resolutoin: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{typo, filepath.Join(dir, "missing.yaml")} {
		_, err := ParseConfig("mandelarea", []string{"--config", path}, &bytes.Buffer{})
		var ce apperrors.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("ParseConfig(--config %s) error = %v, want ConfigError", path, err)
		}
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		tt := tt
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestApplyHardwareDefaults(t *testing.T) {
	t.Parallel()
	cfg := ApplyHardwareDefaults(Default())
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	explicit := Default()
	explicit.Workers = 3
	if got := ApplyHardwareDefaults(explicit).Workers; got != 3 {
		t.Errorf("explicit Workers overwritten: got %d", got)
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Resolution = 10
	cfg.Jobs = 4
	cfg.Batches = 2

	p := cfg.ToParams()
	if p.Resolution != 10 || p.MaxIter != cfg.MaxIter || p.Threshold != cfg.Threshold || p.Epsilon != cfg.Epsilon {
		t.Errorf("ToParams() = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("converted params invalid: %v", err)
	}
	opts := cfg.ToScannerOptions()
	if opts.Jobs != 4 || opts.Batches != 2 || opts.Workers != 0 {
		t.Errorf("ToScannerOptions() = %+v", opts)
	}
}
