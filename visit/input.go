package visit

import "fmt"

type inputKind uint8

const (
	kindValue inputKind = iota
	kindNull
	kindUndefined
	kindForeign
)

// undefined is the type of UndefinedValue.
type undefined struct{}

func (undefined) String() string { return "undefined" }

// UndefinedValue stands for a value that was never provided. FromAny maps
// it to Undefined, and it is what an ErrorFactory receives for an
// unhandled Undefined input.
var UndefinedValue any = undefined{}

// Input is the value reaching dispatch: a value of type V, null, undefined,
// or a foreign value of some other type that arrived from an untyped
// boundary.
type Input[V comparable] struct {
	kind  inputKind
	value V
	raw   any
}

// Of returns an Input holding v.
func Of[V comparable](v V) Input[V] {
	return Input[V]{kind: kindValue, value: v}
}

// Null returns the null Input.
func Null[V comparable]() Input[V] {
	return Input[V]{kind: kindNull}
}

// Undefined returns the undefined Input.
func Undefined[V comparable]() Input[V] {
	return Input[V]{kind: kindUndefined}
}

// FromPointer returns Null for a nil pointer and Of(*p) otherwise.
func FromPointer[V comparable](p *V) Input[V] {
	if p == nil {
		return Null[V]()
	}
	return Of(*p)
}

// FromAny classifies an untyped value: nil is Null, UndefinedValue is
// Undefined, a V is Of. Anything else is kept as a foreign value that only
// the Unexpected arm can handle.
func FromAny[V comparable](x any) Input[V] {
	switch x {
	case nil:
		return Null[V]()
	case UndefinedValue:
		return Undefined[V]()
	}
	if v, ok := x.(V); ok {
		return Of(v)
	}
	return Input[V]{kind: kindForeign, raw: x}
}

// IsNull reports whether in is null.
func (in Input[V]) IsNull() bool { return in.kind == kindNull }

// IsUndefined reports whether in is undefined.
func (in Input[V]) IsUndefined() bool { return in.kind == kindUndefined }

// Value returns the held value and whether in holds a V.
func (in Input[V]) Value() (V, bool) {
	return in.value, in.kind == kindValue
}

// Raw returns in as an untyped value: nil for null, UndefinedValue for
// undefined, and the held value otherwise.
func (in Input[V]) Raw() any {
	switch in.kind {
	case kindNull:
		return nil
	case kindUndefined:
		return UndefinedValue
	case kindForeign:
		return in.raw
	default:
		return in.value
	}
}

// String renders in as "null", "undefined" or the value's %v form.
func (in Input[V]) String() string {
	switch in.kind {
	case kindNull:
		return "null"
	case kindUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("%v", in.Raw())
	}
}
