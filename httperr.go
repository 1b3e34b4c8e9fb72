package collabkit

import (
	"errors"
	"fmt"
)

// StatusError pairs an HTTP status classification with the underlying error,
// the failure shape produced by HTTP client helpers. It unwraps to the
// underlying error so errors.Is/As see through it.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Context returns err with msg prepended to its message, preserving the
// status classification: when the chain contains a *StatusError, the result
// is rebuilt with the same status around the contextualized inner error.
// A nil err stays nil; Context never introduces a failure of its own.
func Context(err error, msg string) error {
	if err == nil {
		return nil
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return &StatusError{Status: statusErr.Status, Err: fmt.Errorf("%s: %w", msg, statusErr.Err)}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ContextFunc is Context with lazily computed context; f is invoked only
// when err is non-nil.
func ContextFunc(err error, f func() string) error {
	if err == nil {
		return nil
	}
	return Context(err, f())
}
