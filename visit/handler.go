package visit

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/zero-day-ai/enumkit/enum"
	"github.com/zero-day-ai/enumkit/enumerr"
)

type handlerKind uint8

const (
	handlerAbsent handlerKind = iota
	handlerFunc
	handlerUnhandled
)

// Handler is one arm of a Table. The zero Handler is absent.
type Handler[V comparable, R any] struct {
	kind handlerKind
	fn   func(Input[V]) R
}

// Handle returns a Handler that calls fn with the dispatched input.
// It panics if fn is nil.
func Handle[V comparable, R any](fn func(Input[V]) R) Handler[V, R] {
	if fn == nil {
		panic("visit: nil handler func")
	}
	return Handler[V, R]{kind: handlerFunc, fn: fn}
}

// HandleValue returns a Handler that calls fn with the dispatched value.
// It is meant for key arms, which always receive a value.
func HandleValue[V comparable, R any](fn func(V) R) Handler[V, R] {
	if fn == nil {
		panic("visit: nil handler func")
	}
	return Handle(func(in Input[V]) R {
		v, _ := in.Value()
		return fn(v)
	})
}

// Run returns a Handler for Visit tables that calls fn for effect.
func Run[V comparable](fn func(Input[V])) Handler[V, struct{}] {
	if fn == nil {
		panic("visit: nil handler func")
	}
	return Handle(func(in Input[V]) struct{} {
		fn(in)
		return struct{}{}
	})
}

// Unhandled returns a Handler that marks an arm as deliberately declined.
// The arm counts as covered for Check, but dispatching to it fails.
func Unhandled[V comparable, R any]() Handler[V, R] {
	return Handler[V, R]{kind: handlerUnhandled}
}

// IsAbsent reports whether h is the zero Handler.
func (h Handler[V, R]) IsAbsent() bool { return h.kind == handlerAbsent }

// IsUnhandled reports whether h was created by Unhandled.
func (h Handler[V, R]) IsUnhandled() bool { return h.kind == handlerUnhandled }

// Table maps each key of an enum to a Handler, plus three out-of-band arms.
type Table[V comparable, R any] struct {
	// Keys holds the handler for each enum key.
	Keys map[string]Handler[V, R]

	// Null handles null inputs.
	Null Handler[V, R]

	// Undefined handles undefined inputs.
	Undefined Handler[V, R]

	// Unexpected handles inputs that are not values of the enum, and null
	// or undefined inputs whose own arm is absent.
	Unexpected Handler[V, R]
}

// Check verifies that t has a present handler for every key of w and no
// keys that w lacks.
func (t Table[V, R]) Check(w *enum.Wrapper[V]) error {
	var missing []string
	for key := range w.Keys() {
		if t.Keys[key].IsAbsent() {
			missing = append(missing, key)
		}
	}

	var unknown []string
	for _, key := range slices.Sorted(maps.Keys(t.Keys)) {
		if !w.IsKey(key) {
			unknown = append(unknown, key)
		}
	}

	if len(missing) == 0 && len(unknown) == 0 {
		return nil
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("missing handlers for %s", strings.Join(missing, ", ")))
	}
	if len(unknown) > 0 {
		problems = append(problems, fmt.Sprintf("unknown keys %s", strings.Join(unknown, ", ")))
	}

	return enumerr.New("Table.Check", enumerr.ErrCodeIncompleteHandlers, strings.Join(problems, "; ")).
		WithInput(append(missing, unknown...))
}

// route selects the arm for in.
func (t Table[V, R]) route(w *enum.Wrapper[V], in Input[V]) Handler[V, R] {
	switch in.kind {
	case kindNull:
		if !t.Null.IsAbsent() {
			return t.Null
		}
	case kindUndefined:
		if !t.Undefined.IsAbsent() {
			return t.Undefined
		}
	case kindValue:
		if w.IsValue(in.value) {
			key, _ := w.GetKey(in.value)
			return t.Keys[key]
		}
	}
	return t.Unexpected
}
