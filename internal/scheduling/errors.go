// Package scheduling implements the capacity-allocation core: capacity
// policy, overlap detection, shift generation and lifecycle, and exam
// date booking.  Operations return typed errors for expected failures;
// callers inspect them with errors.As to choose a response.  Panics are
// reserved for programmer errors such as an unknown enum value reaching
// a branch that should be unreachable.
package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed or out-of-policy input.  Messages
// are ordered the way the checks ran so callers can present them
// verbatim.  The request can be corrected and resubmitted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports that the request collides with existing state:
// an overlapping shift, a duplicate booking or a duplicate ownership.
// The caller can retry with different parameters.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// PersistenceError wraps a store failure.  Internal detail stays in the
// wrapped error for logs; callers should surface it as a generic
// failure with a retry suggestion.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: store failure", e.Op)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrNotSupported marks an operation that is intentionally disabled
// end-to-end.  It is terminal, not transient.
var ErrNotSupported = errors.New("operation not yet supported")

// validationFailure builds a ValidationError from the collected
// messages.  It must only be called with at least one message.
func validationFailure(msgs []string) error {
	if len(msgs) == 0 {
		panic("validationFailure called with no messages")
	}
	return &ValidationError{Messages: msgs}
}

// persistence wraps err unless it is already one of the typed domain
// errors, in which case it passes through untouched.
func persistence(op string, err error) error {
	var ve *ValidationError
	var nf *NotFoundError
	var ce *ConflictError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &ce) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
