package invariant_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/argfeed/core/invariant"
)

// recoverMessage runs fn and returns the panic message, or "" if fn returned normally.
func recoverMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%v", r)
		}
	}()
	fn()
	return ""
}

func TestAssertionsPassQuietly(t *testing.T) {
	msg := recoverMessage(func() {
		invariant.Precondition(true, "unused")
		invariant.Postcondition(len("abc") == 3, "unused")
		invariant.Invariant(1 < 2, "unused")
		invariant.NotNil(&struct{}{}, "value")
		invariant.NotNil(0, "zero int is not nil")
		invariant.ExpectNoError(nil, "unused")
	})
	assert.Empty(t, msg)
}

func TestAssertionFailures(t *testing.T) {
	tests := []struct {
		name     string
		fn       func()
		wantKind string
		wantText string
	}{
		{
			name:     "precondition",
			fn:       func() { invariant.Precondition(false, "args must be unique, %q repeated", "fill") },
			wantKind: "PRECONDITION VIOLATION",
			wantText: `args must be unique, "fill" repeated`,
		},
		{
			name:     "postcondition",
			fn:       func() { invariant.Postcondition(false, "bound %d of %d", 1, 2) },
			wantKind: "POSTCONDITION VIOLATION",
			wantText: "bound 1 of 2",
		},
		{
			name:     "invariant",
			fn:       func() { invariant.Invariant(false, "positional after defaulted") },
			wantKind: "INVARIANT VIOLATION",
			wantText: "positional after defaulted",
		},
		{
			name:     "expect no error",
			fn:       func() { invariant.ExpectNoError(errors.New("short write"), "hash") },
			wantKind: "POSTCONDITION VIOLATION",
			wantText: "hash must not fail: short write",
		},
		{
			name:     "untyped nil",
			fn:       func() { invariant.NotNil(nil, "cmd") },
			wantKind: "PRECONDITION VIOLATION",
			wantText: "cmd must not be nil",
		},
		{
			name: "typed nil pointer",
			fn: func() {
				var p *int
				invariant.NotNil(p, "ptr")
			},
			wantKind: "PRECONDITION VIOLATION",
			wantText: "ptr must not be nil",
		},
		{
			name: "nil map",
			fn: func() {
				var m map[string]string
				invariant.NotNil(m, "directives")
			},
			wantKind: "PRECONDITION VIOLATION",
			wantText: "directives must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := recoverMessage(tt.fn)
			require.NotEmpty(t, msg, "expected a panic")
			assert.Contains(t, msg, tt.wantKind)
			assert.Contains(t, msg, tt.wantText)
			assert.Contains(t, msg, "invariant_test.go", "violation should point at the caller")
		})
	}
}
