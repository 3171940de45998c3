package apperror

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed or missing input. Never retried; surfaced to
// the caller immediately.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError marks a persistence failure. Reads are safe to retry with
// backoff; writes are not, unless the operation is itself atomic.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// AlreadyRunningError is returned when a learner run is requested while one is
// in flight. Callers should retry later; the weight vector is untouched.
type AlreadyRunningError struct{}

func (e *AlreadyRunningError) Error() string {
	return "learner run already in progress"
}

// UpstreamError marks a failed dependency (feature provider, cache). Callers
// should degrade to a neutral result where the contract allows it.
type UpstreamError struct {
	Dep string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Dep, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstream(dep string, err error) error {
	return &UpstreamError{Dep: dep, Err: err}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsAlreadyRunning(err error) bool {
	var target *AlreadyRunningError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
