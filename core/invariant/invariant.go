// Package invariant provides contract assertions for argfeed.
//
// Assertions guard programming errors only: a malformed command table that
// slipped past registration, a binding that lost a parameter. Operator
// mistakes (empty input, bad numbers) are never reported through here; the
// prompter recovers from those itself.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
//
// Example:
//
//	func Inspect(cmd *types.Command) []types.ParamSpec {
//	    invariant.NotNil(cmd, "cmd")
//	    invariant.Precondition(len(cmd.ArgSpec.Defaults) <= len(cmd.ArgSpec.Args), "more defaults than args")
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency while a function runs, e.g. that
// every parameter ended up in exactly one of the positional or keyword sets.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*Command)(nil).
func NotNil(value any, name string) {
	if isNil(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

// ExpectNoError panics if an operation that cannot fail in practice did.
func ExpectNoError(err error, what string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", what, err)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// fail panics with the violation kind and the caller's location.
func fail(kind, format string, args ...any) {
	msg := fmt.Sprintf("%s VIOLATION: %s", kind, fmt.Sprintf(format, args...))

	// Skip runtime.Callers, fail and the exported wrapper.
	pc := make([]uintptr, 1)
	if runtime.Callers(3, pc) > 0 {
		frame, _ := runtime.CallersFrames(pc).Next()
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
