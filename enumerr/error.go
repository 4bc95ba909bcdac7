package enumerr

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error codes.
const (
	// ErrCodeInvalidKey indicates a string that is not a key of the enum
	ErrCodeInvalidKey = "INVALID_KEY"

	// ErrCodeInvalidValue indicates a value that is not a value of the enum
	ErrCodeInvalidValue = "INVALID_VALUE"

	// ErrCodeInvalidObject indicates an object that cannot be wrapped
	ErrCodeInvalidObject = "INVALID_OBJECT"

	// ErrCodeUnhandledValue indicates dispatch reached no usable handler
	ErrCodeUnhandledValue = "UNHANDLED_VALUE"

	// ErrCodeIncompleteHandlers indicates a handler table that does not
	// match the keys of the enum it is used with
	ErrCodeIncompleteHandlers = "INCOMPLETE_HANDLERS"
)

// Sentinel errors, one per code. An *Error matches the sentinel of its code
// under errors.Is.
var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidValue       = errors.New("invalid value")
	ErrInvalidObject      = errors.New("invalid enum-like object")
	ErrUnhandledValue     = errors.New("unhandled value")
	ErrIncompleteHandlers = errors.New("incomplete handler table")
)

var sentinels = map[string]error{
	ErrCodeInvalidKey:         ErrInvalidKey,
	ErrCodeInvalidValue:       ErrInvalidValue,
	ErrCodeInvalidObject:      ErrInvalidObject,
	ErrCodeUnhandledValue:     ErrUnhandledValue,
	ErrCodeIncompleteHandlers: ErrIncompleteHandlers,
}

// Error is a structured error type for enum operations.
type Error struct {
	// Op is the operation that failed (e.g., "Wrapper.AsKey")
	Op string

	// Code is a standard error code constant
	Code string

	// Message is a human-readable error message
	Message string

	// Input is the offending input, if any
	Input any

	// Cause is the underlying error that caused this error
	Cause error
}

// New creates a new structured error.
//
// Example:
//
//	err := enumerr.New("Wrapper.AsKey", enumerr.ErrCodeInvalidKey, `invalid key: "Purple"`)
func New(op, code, message string) *Error {
	return &Error{
		Op:      op,
		Code:    code,
		Message: message,
	}
}

// WithInput records the offending input.
// This method returns the same error instance for method chaining.
func (e *Error) WithInput(input any) *Error {
	e.Input = input
	return e
}

// WithCause adds an underlying error to this error.
// This method returns the same error instance for method chaining.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Tier reports the tier of this error's code.
func (e *Error) Tier() Tier {
	return TierForCode(e.Code)
}

// Error implements the error interface.
// It formats the error as: "enum [op/code]: message: cause"
//
// Examples:
//   - `enum [Wrapper.AsKey/INVALID_KEY]: invalid key: "Purple"`
//   - "enum [visit/UNHANDLED_VALUE]: unhandled value: 7"
func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("enum [%s/%s]", e.Op, e.Code))

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
// An *Error target matches on Code, and on Op as well when the target sets
// one. A sentinel target matches the sentinel for this error's code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Code != e.Code {
			return false
		}
		return t.Op == "" || t.Op == e.Op
	}
	if sentinel, ok := sentinels[e.Code]; ok {
		return sentinel == target
	}
	return false
}

// As implements error type assertion for errors.As().
func (e *Error) As(target any) bool {
	t, ok := target.(**Error)
	if !ok {
		return false
	}
	*t = e
	return true
}

// Describe renders an offending input for error messages. Strings are
// quoted, nil is rendered as "null" and everything else uses %v, so a
// Stringer with a nil receiver renders as "<nil>" rather than panicking.
func Describe(input any) string {
	switch v := input.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

// InvalidKey returns an ErrCodeInvalidKey error for key.
func InvalidKey(op string, key string) *Error {
	return New(op, ErrCodeInvalidKey, "invalid key: "+Describe(key)).WithInput(key)
}

// InvalidValue returns an ErrCodeInvalidValue error for value.
func InvalidValue(op string, value any) *Error {
	return New(op, ErrCodeInvalidValue, "invalid value: "+Describe(value)).WithInput(value)
}

// InvalidObject returns an ErrCodeInvalidObject error describing why obj
// cannot be wrapped.
func InvalidObject(op string, obj any, reason string) *Error {
	return New(op, ErrCodeInvalidObject, reason).WithInput(obj)
}

// Unhandled returns an ErrCodeUnhandledValue error for value.
func Unhandled(op string, value any) *Error {
	return New(op, ErrCodeUnhandledValue, "unhandled value: "+Describe(value)).WithInput(value)
}
