package parallel

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ErrorCollector records the first non-nil error reported by any number of
// concurrent goroutines. The zero value is ready to use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError stores err if it is the first non-nil error seen.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Err returns the first recorded error, or nil.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// PanicError carries a value recovered from a panicking task.
type PanicError struct {
	Value any
	Stack []byte
}

// Error returns the recovered value.
func (e PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap exposes the recovered value when it was itself an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover converts a panic in the calling function into a PanicError stored
// in *err. It must be invoked directly by defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = PanicError{Value: r, Stack: debug.Stack()}
	}
}
