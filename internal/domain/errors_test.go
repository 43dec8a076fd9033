package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_Message(t *testing.T) {
	err := &ParseError{
		Op:     "parse.games",
		Kind:   KindUnexpectedToken,
		Offset: 7,
		Err:    ErrUnexpectedToken,
	}

	want := "parse.games: unexpected_token (offset=7): unexpected token"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Op: "parse.games", Kind: KindExpectedDigits, Err: ErrExpectedDigits}
	if !errors.Is(err, ErrExpectedDigits) {
		t.Fatalf("expected errors.Is to see the sentinel")
	}
}

func TestIsKind(t *testing.T) {
	perr := &ParseError{Op: "parse.games", Kind: KindTrailingInput}
	if !IsKind(perr, KindTrailingInput) {
		t.Fatalf("expected kind trailing_input")
	}
	if IsKind(perr, KindUnknownColor) {
		t.Fatalf("did not expect kind unknown_color")
	}

	oerr := &OpError{Op: "config.load", Kind: KindInvalidConfig}
	if !IsKind(oerr, KindInvalidConfig) {
		t.Fatalf("expected kind invalid_config")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := &ParseError{Op: "parse.games", Kind: KindExpectedDigits}
	wrapped := fmt.Errorf("tally: %w", inner)
	if !IsKind(wrapped, KindExpectedDigits) {
		t.Fatalf("expected kind to survive wrapping")
	}
}
