// Package parallel holds the concurrency building blocks shared by the
// concurrent scanners: a fixed-size worker pool with an explicit quiescence
// barrier, an exact-count fan-in, and a first-error collector.
package parallel
