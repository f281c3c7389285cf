package errkind

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value is reserved for "no kind"

	InvalidInterval
	MalformedStage
	SearchExhausted
)

// Error is a failure of a single remapping operation.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "stage.apply".
	Op string
	// Detail is a human-readable description of the offending input.
	Detail string
}

// Sentinels for errors.Is matching. They carry a Kind only.
var (
	ErrInvalidInterval = &Error{Kind: InvalidInterval}
	ErrMalformedStage  = &Error{Kind: MalformedStage}
	ErrSearchExhausted = &Error{Kind: SearchExhausted}
)

// New builds an *Error with a formatted detail message.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Op != "" {
		msg = e.Op + ": " + msg
	}

	return msg
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf extracts the Kind from err, or the zero Kind if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
