// Package orchestration drives a benchmark run: it executes the scanners in
// phase order, checks every concurrent total against the sequential
// baseline, computes the area estimate and hands the timing row to a sink.
// Presentation and persistence are reached only through the PhaseReporter,
// ResultPresenter and ResultSink interfaces.
package orchestration
