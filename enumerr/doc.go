// Package enumerr provides structured error types for enum reflection.
//
// # Overview
//
// Every fallible operation in enumkit reports failure with an *Error that
// names the operation, a standard error code and the offending input. The
// message always embeds the input's string form.
//
// # Error Codes
//
//   - ErrCodeInvalidKey: a string is not a key of the enum
//   - ErrCodeInvalidValue: a value is not a value of the enum
//   - ErrCodeInvalidObject: an object cannot be wrapped as an enum
//   - ErrCodeUnhandledValue: dispatch found no usable handler
//   - ErrCodeIncompleteHandlers: a handler table does not cover the enum
//
// # Usage
//
// Check for specific errors:
//
//	if _, err := w.AsKey(input); errors.Is(err, enumerr.ErrInvalidKey) {
//	    // fall back
//	}
//
// Extract error details:
//
//	var enumErr *enumerr.Error
//	if errors.As(err, &enumErr) {
//	    fmt.Printf("Operation: %s, Code: %s, Input: %v\n",
//	        enumErr.Op, enumErr.Code, enumErr.Input)
//	}
//
// # Tiers
//
// Errors fall into two tiers. TierInput covers invalid keys, values and
// objects: callers choose per call site between the error-returning form
// and the OrDefault form of an operation. TierDispatch covers dispatch
// exhaustion, which is always reported as an error.
package enumerr
