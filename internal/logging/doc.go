// Package logging provides a unified logging interface for the Mandelbrot
// benchmark. It abstracts the underlying logging implementation, allowing
// consistent logging across the scanners, the driver, and the CLI while
// supporting multiple backends.
package logging
