package config

import "fmt"

// ArgumentError is returned for malformed or unrecognized command line arguments.
// No file is processed once an ArgumentError has been raised.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// NewArgumentError formats a message into an ArgumentError
func NewArgumentError(format string, v ...interface{}) error {
	return &ArgumentError{Err: fmt.Errorf(format, v...)}
}
