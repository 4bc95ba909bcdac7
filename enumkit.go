package enumkit

import (
	"github.com/zero-day-ai/enumkit/enum"
	"github.com/zero-day-ai/enumkit/visit"
)

// Wrapper is a typed view over one enum-like object.
type Wrapper[V comparable] = enum.Wrapper[V]

// Entry is one key/value pair of an enum.
type Entry[V comparable] = enum.Entry[V]

// Table is a dispatch table for MapValue and VisitValue.
type Table[V comparable, R any] = visit.Table[V, R]

// Handler is one arm of a Table.
type Handler[V comparable, R any] = visit.Handler[V, R]

// Input is the value reaching dispatch.
type Input[V comparable] = visit.Input[V]

// Enum returns the cached wrapper for obj, a pointer to a struct whose
// exported fields are the enum's entries. It panics if obj cannot be
// wrapped.
func Enum[V comparable](obj any) *Wrapper[V] {
	return enum.MustWrap[V](obj)
}

// VisitValue dispatches in to its arm of t for effect.
func VisitValue[V comparable](w *Wrapper[V], in Input[V], t Table[V, struct{}], opts ...visit.Option) error {
	return visit.Visit(w, in, t, opts...)
}

// MapValue dispatches in to its arm of t and returns the handler's result.
func MapValue[V comparable, R any](w *Wrapper[V], in Input[V], t Table[V, R], opts ...visit.Option) (R, error) {
	return visit.Map(w, in, t, opts...)
}

// Of returns an Input holding v.
func Of[V comparable](v V) Input[V] { return visit.Of(v) }

// Null returns the null Input.
func Null[V comparable]() Input[V] { return visit.Null[V]() }

// Undefined returns the undefined Input.
func Undefined[V comparable]() Input[V] { return visit.Undefined[V]() }

// FromAny classifies an untyped value for dispatch.
func FromAny[V comparable](x any) Input[V] { return visit.FromAny[V](x) }

// Handle returns a Handler that calls fn with the dispatched input.
func Handle[V comparable, R any](fn func(Input[V]) R) Handler[V, R] { return visit.Handle(fn) }

// HandleValue returns a Handler that calls fn with the dispatched value.
func HandleValue[V comparable, R any](fn func(V) R) Handler[V, R] { return visit.HandleValue(fn) }

// Run returns a Handler for VisitValue tables.
func Run[V comparable](fn func(Input[V])) Handler[V, struct{}] { return visit.Run(fn) }

// Unhandled returns a Handler that covers an arm but fails if reached.
func Unhandled[V comparable, R any]() Handler[V, R] { return visit.Unhandled[V, R]() }
