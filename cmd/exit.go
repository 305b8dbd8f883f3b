package cmd

import "fmt"

// ExitError asks main to exit with Code instead of the default failure code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v (exit %d)", e.Err, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }
