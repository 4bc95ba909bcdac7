// Package protoenum wraps protobuf enum types as enum-like objects.
//
// The keys are the enum value names and the values their numbers, in the
// order the values are declared in the .proto file. Aliases declared with
// allow_alias are duplicate values: reverse lookups return the first name.
//
//	w, err := protoenum.Of(descriptorpb.FieldDescriptorProto_TYPE_STRING)
//	w.GetKeyOrDefault(descriptorpb.FieldDescriptorProto_TYPE_BOOL, "") // "TYPE_BOOL"
package protoenum

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zero-day-ai/enumkit/enum"
	"github.com/zero-day-ai/enumkit/enumerr"
)

// Enum is satisfied by generated protobuf enum types.
type Enum interface {
	~int32
	protoreflect.Enum
}

// Wrap returns the wrapper for desc from the process-wide cache.
func Wrap[E ~int32](desc protoreflect.EnumDescriptor) (*enum.Wrapper[E], error) {
	return WrapIn[E](enum.Default(), desc)
}

// WrapIn returns the wrapper for desc from c. Wrappers are cached by
// descriptor identity.
//
// When E is a generated enum type, desc must describe E. Other ~int32 types
// such as protoreflect.EnumNumber accept any descriptor.
func WrapIn[E ~int32](c *enum.Cache, desc protoreflect.EnumDescriptor) (*enum.Wrapper[E], error) {
	const op = "protoenum.Wrap"

	if desc == nil {
		return nil, enumerr.InvalidObject(op, nil, "enum descriptor is nil")
	}
	if generated, ok := any(E(0)).(protoreflect.Enum); ok {
		if want := generated.Descriptor().FullName(); want != desc.FullName() {
			return nil, enumerr.InvalidObject(op, desc,
				fmt.Sprintf("descriptor %s does not describe %s", desc.FullName(), want))
		}
	}
	return enum.Load(c, desc, func() ([]enum.Entry[E], error) {
		return entries[E](desc), nil
	})
}

// Of wraps the enum type of e.
func Of[E Enum](e E) (*enum.Wrapper[E], error) {
	return Wrap[E](e.Descriptor())
}

func entries[E ~int32](desc protoreflect.EnumDescriptor) []enum.Entry[E] {
	values := desc.Values()
	out := make([]enum.Entry[E], values.Len())
	for i := range out {
		v := values.Get(i)
		out[i] = enum.Entry[E]{Key: string(v.Name()), Value: E(v.Number())}
	}
	return out
}
