package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedDigits  = errors.New("expected digits")
	ErrUnknownColor    = errors.New("unknown color")
	ErrTrailingInput   = errors.New("trailing input")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrNotFound        = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUnexpectedToken ErrorKind = "unexpected_token"
	KindExpectedDigits  ErrorKind = "expected_digits"
	KindUnknownColor    ErrorKind = "unknown_color"
	KindTrailingInput   ErrorKind = "trailing_input"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindNotFound        ErrorKind = "not_found"
)

// ParseError wraps an underlying error with operation context, a kind and
// the byte offset in the input where parsing stopped.
type ParseError struct {
	Op     string
	Kind   ErrorKind
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s (offset=%d)", e.Op, e.Kind, e.Offset)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OpError wraps an underlying error with operation context and a kind, for
// failures outside the parser (config loading, input loading).
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without matching on concrete types.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
