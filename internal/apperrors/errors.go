package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the service layer wraps exactly one
// of these, so callers can classify with errors.Is without string matching.
var (
	ErrValidation   = errors.New("validation failed")
	ErrBusinessRule = errors.New("business rule violated")
	ErrPolicy       = errors.New("operation not allowed")
	ErrPersistence  = errors.New("persistence failure")
)

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// Validation reports malformed or missing input. No store access has happened.
func Validation(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// BusinessRule reports a domain constraint that would be broken.
func BusinessRule(format string, args ...any) error {
	return &kindError{kind: ErrBusinessRule, msg: fmt.Sprintf(format, args...)}
}

// Policy reports an operation that is categorically disallowed.
func Policy(format string, args ...any) error {
	return &kindError{kind: ErrPolicy, msg: fmt.Sprintf(format, args...)}
}

// Persistence wraps a store failure. The enclosing transaction has been
// rolled back; cause stays reachable through errors.Is / errors.As.
func Persistence(cause error, format string, args ...any) error {
	return &kindError{kind: ErrPersistence, msg: fmt.Sprintf(format, args...), cause: cause}
}
