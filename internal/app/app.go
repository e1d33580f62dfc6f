// Package app wires configuration, strategies, presentation and persistence
// into the mandelarea command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/mandelarea/internal/cli"
	"github.com/agbru/mandelarea/internal/config"
	apperrors "github.com/agbru/mandelarea/internal/errors"
	"github.com/agbru/mandelarea/internal/logging"
	"github.com/agbru/mandelarea/internal/mandelbrot"
	"github.com/agbru/mandelarea/internal/metrics"
	"github.com/agbru/mandelarea/internal/orchestration"
	"github.com/agbru/mandelarea/internal/sysmon"
	"github.com/agbru/mandelarea/internal/tui"
	"github.com/agbru/mandelarea/internal/ui"
)

// Application represents one mandelarea invocation.
type Application struct {
	Config    config.AppConfig
	Factory   *mandelbrot.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.PhaseMetrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory replaces the default strategy registry.
func WithFactory(f *mandelbrot.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "mandelarea"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyHardwareDefaults(cfg)

	app := &Application{Config: cfg, ErrWriter: errWriter, Metrics: metrics.NewPhaseMetrics()}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = mandelbrot.NewDefaultFactory(cfg.ToScannerOptions())
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the benchmark and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if err := logging.SetGlobalLevel(a.Config.LogLevel); err != nil {
		return a.fail(apperrors.NewConfigError("invalid log level: %v", err))
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	scanners, err := orchestration.ScannersFromFactory(a.Factory)
	if err != nil {
		return a.fail(apperrors.NewConfigError("%v", err))
	}

	if a.Config.TUI {
		return a.runTUI(ctx, scanners, out)
	}
	return a.runBenchmark(ctx, scanners, out)
}

// runBenchmark runs the phases Config.Runs times with console output.
func (a *Application) runBenchmark(ctx context.Context, scanners []mandelbrot.Scanner, out io.Writer) int {
	var reporter orchestration.PhaseReporter = orchestration.NullPhaseReporter{}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, sysmon.DescribeHost(), out)
		reporter = cli.NewCLIPhaseReporter(out)
	}

	presenter := cli.CLIResultPresenter{}
	reports, err := a.runLoop(ctx, scanners, reporter, func(report orchestration.Report) {
		if a.Config.Quiet {
			cli.DisplayQuietResult(out, report)
			return
		}
		presenter.PresentReport(report, a.presentationOptions(), out)
	})
	if err != nil {
		return a.fail(err)
	}
	if !a.Config.Quiet {
		presenter.PresentSummary(orchestration.Summarize(reports), out)
	}
	return apperrors.ExitSuccess
}

// runTUI runs the phases behind the dashboard, then prints the final report.
func (a *Application) runTUI(ctx context.Context, scanners []mandelbrot.Scanner, out io.Writer) int {
	phases := make([]string, len(scanners))
	for i, s := range scanners {
		phases[i] = orchestration.PhaseName(s.Name())
	}

	var reports []orchestration.Report
	last, err := tui.Run(ctx, phases, Version, func(reporter orchestration.PhaseReporter) (orchestration.Report, error) {
		var err error
		reports, err = a.runLoop(ctx, scanners, reporter, nil)
		if len(reports) == 0 {
			return orchestration.Report{}, err
		}
		return reports[len(reports)-1], err
	})
	if err != nil {
		return a.fail(err)
	}

	presenter := cli.CLIResultPresenter{}
	presenter.PresentReport(last, a.presentationOptions(), out)
	presenter.PresentSummary(orchestration.Summarize(reports), out)
	return apperrors.ExitSuccess
}

// runLoop drives Config.Runs runs and exports metrics once at the end, also
// after a failure so that a mismatch is visible to monitoring.
func (a *Application) runLoop(ctx context.Context, scanners []mandelbrot.Scanner, reporter orchestration.PhaseReporter, onReport func(orchestration.Report)) ([]orchestration.Report, error) {
	driver, err := orchestration.NewDriver(a.Config.ToParams(), scanners, orchestration.DriverOptions{
		Reporter: reporter,
		Sink:     cli.CSVSink{Path: a.Config.OutputFile},
		Recorder: a.Metrics,
		Logger:   a.Logger,
		Details:  a.Config.Details,
	})
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("benchmark plan", logging.String("driver", driver.String()), logging.Int("runs", a.Config.Runs))

	reports := make([]orchestration.Report, 0, a.Config.Runs)
	for run := 1; run <= a.Config.Runs; run++ {
		report, err := driver.Run(ctx)
		if err != nil {
			return reports, errors.Join(err, a.exportMetrics())
		}
		a.Logger.Info("result row appended",
			logging.String("path", a.Config.OutputFile),
			logging.Int("run", run),
			logging.Float64("area", report.Area))
		reports = append(reports, report)
		if onReport != nil {
			onReport(report)
		}
	}
	return reports, a.exportMetrics()
}

func (a *Application) exportMetrics() error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		return apperrors.OutputError{Path: a.Config.MetricsFile, Cause: err}
	}
	a.Logger.Info("metrics exported", logging.String("path", a.Config.MetricsFile))
	return nil
}

func (a *Application) presentationOptions() orchestration.PresentationOptions {
	return orchestration.PresentationOptions{Verbose: a.Config.Verbose, Details: a.Config.Details}
}

// fail reports err on ErrWriter and returns its exit code.
func (a *Application) fail(err error) int {
	return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
