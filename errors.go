package termbg

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a query failed.
type ErrorKind string

const (
	KindIO          ErrorKind = "io"
	KindParse       ErrorKind = "parse"
	KindUnsupported ErrorKind = "unsupported"
	KindTimeout     ErrorKind = "timeout"
)

// Error is returned by every failing query. Detail carries the offending
// response text for parse errors; Err is the underlying I/O error, if any.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindIO:
		msg = "io error"
	case KindParse:
		msg = "parse error"
	case KindUnsupported:
		msg = "unsupported"
	case KindTimeout:
		msg = "timeout"
	default:
		msg = string(e.Kind)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrTimeout) works
// regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Detail == "" && t.Err == nil
}

// Sentinels for errors.Is.
var (
	ErrIO          = &Error{Kind: KindIO}
	ErrParse       = &Error{Kind: KindParse}
	ErrUnsupported = &Error{Kind: KindUnsupported}
	ErrTimeout     = &Error{Kind: KindTimeout}
)

func ioError(err error) error {
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return &Error{Kind: KindIO, Err: err}
}

func parseError(format string, args ...any) error {
	return &Error{Kind: KindParse, Detail: fmt.Sprintf(format, args...)}
}

func unsupported(detail string) error {
	return &Error{Kind: KindUnsupported, Detail: detail}
}

func timeoutError(detail string) error {
	return &Error{Kind: KindTimeout, Detail: detail}
}

// KindOf reports the kind of err, or "" if err is not a termbg error.
func KindOf(err error) ErrorKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}
