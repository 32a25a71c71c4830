package cmd

import (
	"errors"
	"fmt"
)

// Exit codes for mypackage commands.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // Operation failed (overflow, update failure, interrupted delay)
	ExitUsage   = 2 // Invalid arguments, flags or configuration
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(message string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: message, Err: err}
}

func failure(message string, err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: message, Err: err}
}

// ExitCode extracts the exit code from an error.
// Errors that are not an ExitError map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
