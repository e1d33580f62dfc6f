// Package metrics collects per-phase measurements of a benchmark run: runtime
// memory snapshots for the --details report and Prometheus collectors that
// can be exported to a textfile for node_exporter.
package metrics
