package domain

import (
	"errors"
	"io"
	"testing"
)

func TestFetchErrorIs(t *testing.T) {
	tests := map[string]struct {
		err                 *FetchError
		transport, isDecode bool
	}{
		"transport": {TransportError(io.ErrUnexpectedEOF), true, false},
		"decode":    {DecodeError(io.ErrUnexpectedEOF), false, true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if actual := errors.Is(test.err, ErrTransport); actual != test.transport {
				t.Errorf("unexpected errors.Is(err, ErrTransport): got %t, expect %t\n", actual, test.transport)
			}
			if actual := errors.Is(test.err, ErrDecode); actual != test.isDecode {
				t.Errorf("unexpected errors.Is(err, ErrDecode): got %t, expect %t\n", actual, test.isDecode)
			}
			if !errors.Is(test.err, io.ErrUnexpectedEOF) {
				t.Errorf("unexpected cause of error: got %v, expect %s\n", errors.Unwrap(test.err), io.ErrUnexpectedEOF)
			}
		})
	}
}

func TestFetchErrorError(t *testing.T) {
	tests := map[string]struct {
		err      *FetchError
		expected string
	}{
		"transport": {TransportError(errors.New("404 Not Found")), "transport error: 404 Not Found"},
		"decode":    {DecodeError(errors.New("unexpected end of JSON input")), "decode error: unexpected end of JSON input"},
		"unknown":   {&FetchError{Err: errors.New("boom")}, "unknown(0) error: boom"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if actual := test.err.Error(); actual != test.expected {
				t.Errorf("unexpected message: got %q, expect %q\n", actual, test.expected)
			}
		})
	}
}
