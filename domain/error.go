package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("decode failure")

	errClosedWithoutResult = errors.New("result channel closed without result")
)

type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FetchError is the single failure type of DataService. Kind tells a
// transport failure apart from a payload that did not decode.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func TransportError(err error) *FetchError {
	return &FetchError{Kind: KindTransport, Err: err}
}

func DecodeError(err error) *FetchError {
	return &FetchError{Kind: KindDecode, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrDecode:
		return e.Kind == KindDecode
	default:
		return false
	}
}
