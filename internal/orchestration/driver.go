package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/logging"
	"github.com/agbru/mandelarea/internal/mandelbrot"
	"github.com/agbru/mandelarea/internal/metrics"
	"github.com/agbru/mandelarea/internal/sysmon"
)

const tracerName = "github.com/agbru/mandelarea/internal/orchestration"

// DriverOptions holds the optional collaborators of a Driver. Nil fields are
// replaced by no-op implementations.
type DriverOptions struct {
	Reporter PhaseReporter
	Sink     ResultSink
	Recorder PhaseRecorder
	Logger   logging.Logger
	// Details enables per-phase memory deltas and system samples.
	Details bool
}

// Driver runs the scan phases of a benchmark in order. The first scanner is
// the baseline; every later scanner must report the same total.
type Driver struct {
	params   mandelbrot.Params
	scanners []mandelbrot.Scanner
	reporter PhaseReporter
	sink     ResultSink
	recorder PhaseRecorder
	logger   logging.Logger
	details  bool
	memory   *metrics.MemoryCollector
	sample   func() sysmon.Stats
	now      func() time.Time
}

// NewDriver creates a driver for the given parameters and scanners.
//
// Parameters:
//   - params: The grid and escape-test parameters shared by every phase.
//   - scanners: The strategies to run, baseline first.
//   - opts: Optional collaborators.
//
// Returns:
//   - *Driver: The configured driver.
//   - error: A ConfigError when params are invalid or no scanner is given.
func NewDriver(params mandelbrot.Params, scanners []mandelbrot.Scanner, opts DriverOptions) (*Driver, error) {
	if err := params.Validate(); err != nil {
		return nil, apperrors.NewConfigError("invalid parameters: %v", err)
	}
	if len(scanners) == 0 {
		return nil, apperrors.NewConfigError("at least one scanner is required")
	}
	d := &Driver{
		params:   params,
		scanners: scanners,
		reporter: opts.Reporter,
		sink:     opts.Sink,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		details:  opts.Details,
		memory:   metrics.NewMemoryCollector(),
		sample:   sysmon.Sample,
		now:      time.Now,
	}
	if d.reporter == nil {
		d.reporter = NullPhaseReporter{}
	}
	if d.sink == nil {
		d.sink = discardSink{}
	}
	if d.recorder == nil {
		d.recorder = nullRecorder{}
	}
	if d.logger == nil {
		d.logger = logging.NewLogger(io.Discard, "orchestration")
	}
	return d, nil
}

// Run executes every scan phase, then FINALIZE. It returns as soon as a
// phase fails or disagrees with the baseline; in that case no row reaches
// the sink and the returned report holds the phases completed so far.
//
// The context is checked between phases only. A running scan is never
// interrupted.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "mandelarea.run", trace.WithAttributes(
		attribute.Int("mandelarea.resolution", d.params.Resolution),
		attribute.Int("mandelarea.max_iter", d.params.MaxIter),
		attribute.Int("mandelarea.phases", len(d.scanners)),
	))
	defer span.End()

	report := Report{Params: d.params, Phases: make([]PhaseResult, 0, len(d.scanners))}
	baseline := 0

	for i, scanner := range d.scanners {
		if err := ctx.Err(); err != nil {
			return report, endSpan(span, err)
		}
		info := PhaseInfo{Index: i, Total: len(d.scanners), Name: PhaseName(scanner.Name()), Strategy: scanner.Name()}
		result := d.runPhase(ctx, info, scanner)

		if result.Err == nil && i > 0 && result.Outside != baseline {
			result.Err = apperrors.MismatchError{Strategy: info.Strategy, Got: result.Outside, Want: baseline}
			d.recorder.MismatchDetected()
			d.logger.Error("strategies disagree", result.Err,
				logging.String("strategy", info.Strategy),
				logging.Int("got", result.Outside),
				logging.Int("want", baseline))
		}
		d.reporter.PhaseFinished(result)
		if result.Err != nil {
			return report, endSpan(span, result.Err)
		}

		if i == 0 {
			baseline = result.Outside
		}
		d.recorder.ObservePhase(info.Strategy, result.Duration.Seconds(), result.Outside)
		report.Phases = append(report.Phases, result)
	}

	if err := d.finalize(ctx, &report, baseline); err != nil {
		return report, endSpan(span, err)
	}
	span.SetAttributes(attribute.Int("mandelarea.outside", report.Outside))
	return report, nil
}

func (d *Driver) runPhase(ctx context.Context, info PhaseInfo, scanner mandelbrot.Scanner) PhaseResult {
	_, span := otel.Tracer(tracerName).Start(ctx, info.Name, trace.WithAttributes(
		attribute.String("mandelarea.strategy", info.Strategy),
		attribute.Int("mandelarea.phase_index", info.Index),
	))
	defer span.End()

	d.reporter.PhaseStarted(info)
	d.logger.Debug("phase started", logging.String("phase", info.Name))

	var before metrics.MemorySnapshot
	if d.details {
		before = d.memory.Snapshot()
	}

	start := d.now()
	outside, err := scanner.Scan(d.params)
	elapsed := d.now().Sub(start)

	result := PhaseResult{PhaseInfo: info, Outside: outside, Duration: elapsed}
	if d.details {
		result.Memory = metrics.Delta(before, d.memory.Snapshot())
		result.System = d.sample()
	}
	if err != nil {
		var scanErr apperrors.ScanError
		if !errors.As(err, &scanErr) {
			err = apperrors.ScanError{Strategy: info.Strategy, Cause: err}
		}
		result.Err = err
		result.Outside = 0
		d.logger.Error("phase failed", err, logging.String("phase", info.Name))
		endSpan(span, err)
		return result
	}

	span.SetAttributes(attribute.Int("mandelarea.outside", outside))
	d.logger.Debug("phase finished",
		logging.String("phase", info.Name),
		logging.Int("outside", outside),
		logging.Duration("elapsed", elapsed))
	return result
}

func (d *Driver) finalize(ctx context.Context, report *Report, outside int) error {
	_, span := otel.Tracer(tracerName).Start(ctx, PhaseFinalize)
	defer span.End()

	report.Outside = outside
	report.Area, report.ErrorBound = d.params.Area(outside)

	seconds := make([]float64, len(report.Phases))
	for i, p := range report.Phases {
		seconds[i] = p.Duration.Seconds()
	}
	report.Row = ResultRow{Seconds: seconds}

	if err := d.sink.Append(report.Row); err != nil {
		return endSpan(span, err)
	}
	d.recorder.RunCompleted()
	d.logger.Debug("result row appended", logging.Float64("area", report.Area), logging.Float64("error", report.ErrorBound))
	return nil
}

// endSpan marks span as failed and returns err unchanged.
func endSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

type discardSink struct{}

func (discardSink) Append(ResultRow) error { return nil }

type nullRecorder struct{}

func (nullRecorder) ObservePhase(string, float64, int) {}
func (nullRecorder) RunCompleted()                      {}
func (nullRecorder) MismatchDetected()                  {}

// String describes the driver's phase plan, e.g. for verbose logging.
func (d *Driver) String() string {
	names := make([]string, 0, len(d.scanners)+1)
	for _, s := range d.scanners {
		names = append(names, PhaseName(s.Name()))
	}
	names = append(names, PhaseFinalize)
	return fmt.Sprintf("driver(N=%d, phases=%v)", d.params.Resolution, names)
}
