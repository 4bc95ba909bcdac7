// Package visit dispatches an enum value to one handler out of a table,
// like a switch over a closed set of cases that still has a defined answer
// for values outside that set.
//
// A Table holds one handler per enum key plus three out-of-band arms:
// Null, Undefined and Unexpected. Each arm is a Handler, which is either
// absent (the zero value), a function (Handle, HandleValue, Run) or
// explicitly declined (Unhandled):
//
//	t := visit.Table[int, string]{
//	    Keys: map[string]visit.Handler[int, string]{
//	        "Up":    visit.HandleValue(func(int) string { return "north" }),
//	        "Down":  visit.HandleValue(func(int) string { return "south" }),
//	        "Left":  visit.Unhandled[int, string](),
//	        "Right": visit.HandleValue(func(int) string { return "east" }),
//	    },
//	    Unexpected: visit.Handle(func(in visit.Input[int]) string { return "?" }),
//	}
//	label, err := visit.Map(w, visit.Of(2), t)
//
// Dispatch rules for a value v reaching wrapper w:
//
//  1. Null uses t.Null if present, otherwise falls through to step 4.
//  2. Undefined uses t.Undefined if present, otherwise falls through.
//  3. A value of w uses the handler of its key (the first key holding it).
//  4. Anything else uses t.Unexpected if present.
//
// If the selected arm is absent or Unhandled, no handler runs and the call
// fails with the error produced by the configured ErrorFactory.
//
// Go has no compile-time check that a table covers every key. Table.Check
// reports missing and unknown keys, and Compile runs it once up front and
// returns a reusable Dispatcher.
package visit
