package export

import "fmt"

// LoadError indicates the input artifact was missing, corrupted, or held
// an incompatible model type. It is never recovered locally; the caller
// decides whether to terminate.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError indicates the output location was not writable.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}
