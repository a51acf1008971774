// Package apperror carries business failures from the core packages to the
// HTTP layer, which maps each kind to a status code exactly once.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation marks malformed or invariant-violating input.
	KindValidation Kind = iota + 1
	// KindUnauthenticated marks a missing, invalid or expired token.
	KindUnauthenticated
	// KindNotFound marks an id that does not resolve, or resolves to an
	// inactive row where an active one is required.
	KindNotFound
	// KindConflict marks a duplicate unique key, e.g. an admin email.
	KindConflict
	// KindInternal marks storage or other unexpected failures.
	KindInternal
)

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Detail: fmt.Sprintf(format, args...)}
}

func Unauthenticated(detail string) error {
	return &Error{Kind: KindUnauthenticated, Detail: detail}
}

func NotFound(detail string) error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func Conflict(detail string) error {
	return &Error{Kind: KindConflict, Detail: detail}
}

func Internal(detail string, err error) error {
	return &Error{Kind: KindInternal, Detail: detail, Err: err}
}

// KindOf reports the kind of err, defaulting to KindInternal for errors
// that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// DetailOf returns the caller-visible detail message of err. Internal
// errors keep their underlying cause out of the detail string.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return err.Error()
}
