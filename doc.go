// Package enumkit provides runtime reflection for enum-like objects:
// ordered iteration, reverse lookup, validated casts and exhaustive value
// dispatch over a fixed set of string keys mapped to numbers or strings.
//
// # Getting Started
//
// Declare the enum as a package-level struct pointer and wrap it:
//
//	var Direction = &struct {
//	    Up, Down, Left, Right int
//	}{1, 2, 3, 4}
//
//	w := enumkit.Enum[int](Direction)
//	for key, value := range w.All() {
//	    fmt.Println(key, value)
//	}
//
// Enum returns the same wrapper every time it is given the same pointer,
// so it is cheap to call from hot paths.
//
// # Lookups
//
// Each fallible lookup has an error-returning form and an OrDefault form:
//
//	key, err := w.AsKey(input)            // error names the bad input
//	key := w.AsKeyOrDefault(input, "Up")  // never fails
//
// # Dispatch
//
// MapValue and VisitValue route a value to one handler of a table, with
// dedicated arms for null, undefined and unexpected input:
//
//	label, err := enumkit.MapValue(w, enumkit.Of(v), enumkit.Table[int, string]{
//	    Keys: map[string]enumkit.Handler[int, string]{
//	        "Up":    enumkit.HandleValue(func(int) string { return "north" }),
//	        "Down":  enumkit.HandleValue(func(int) string { return "south" }),
//	        "Left":  enumkit.Unhandled[int, string](),
//	        "Right": enumkit.HandleValue(func(int) string { return "east" }),
//	    },
//	})
//
// # Packages
//
//   - enum: wrappers, the identity cache and its options
//   - visit: dispatch tables and Dispatcher
//   - index: the ordered dual index behind each wrapper
//   - protoenum: wrappers for protobuf enum types
//   - enumerr: structured errors
//
// # Thread Safety
//
// Wrappers are immutable and the cache is safe for concurrent use.
package enumkit
