package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotYetAvailable is returned when the requested height has not been produced yet
	ErrNotYetAvailable = errors.New("height not yet available")

	// ErrTransient marks failures that are expected to clear on retry
	ErrTransient = errors.New("transient error")

	// ErrUnavailable is returned when the consensus endpoint stayed unreachable for the whole retry budget
	ErrUnavailable = errors.New("consensus endpoint unavailable")

	// ErrPermanent marks payloads that can never be processed
	ErrPermanent = errors.New("permanent error")

	// ErrConflict is returned when a commit does not line up with the stored checkpoint
	ErrConflict = errors.New("checkpoint conflict")

	// ErrCheckpointNotFound is returned when a domain has no checkpoint row
	ErrCheckpointNotFound = errors.New("checkpoint not found")
)

// TransientError wraps a retryable failure of an operation
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func (e *TransientError) Is(target error) bool {
	return target == ErrTransient
}

// NewTransientError wraps err as a transient failure of op
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// PermanentError reports a block that cannot be processed as delivered
type PermanentError struct {
	Domain Domain
	Height uint64
	Err    error
}

func (e *PermanentError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("malformed block at height %d: %v", e.Height, e.Err)
	}
	return fmt.Sprintf("malformed block at height %d for %s: %v", e.Height, e.Domain, e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func (e *PermanentError) Is(target error) bool {
	return target == ErrPermanent
}

// NewPermanentError builds a PermanentError for a height
func NewPermanentError(d Domain, height uint64, format string, args ...any) error {
	return &PermanentError{Domain: d, Height: height, Err: fmt.Errorf(format, args...)}
}

// ConflictError reports a commit that would break checkpoint contiguity or write a duplicate fact
type ConflictError struct {
	Domain     Domain
	Height     uint64
	Checkpoint uint64
	Reason     string

	// AlreadyCommitted is set when the checkpoint is at Height and was advanced by the same writer
	AlreadyCommitted bool
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict committing %s height %d (checkpoint %d): %s",
		e.Domain, e.Height, e.Checkpoint, e.Reason)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsAlreadyCommitted reports whether err is a conflict raised because the caller itself already committed the height
func IsAlreadyCommitted(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict) && conflict.AlreadyCommitted
}

// IsTransient reports whether err should be retried with backoff
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrPermanent) &&
		!errors.Is(err, ErrConflict) &&
		!errors.Is(err, ErrNotYetAvailable)
}
