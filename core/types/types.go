package types

import (
	"context"
	"fmt"
	"strings"
)

// ParamSpec describes one parameter of a registered command.
type ParamSpec struct {
	Name       string
	HasDefault bool
	Default    any // meaningful only when HasDefault is set
}

// IsKeyword reports whether the parameter binds by name. Parameters with a
// declared default bind by name; the rest bind positionally.
func (p ParamSpec) IsKeyword() bool {
	return p.HasDefault
}

// ArgSpec is the declared signature of a command: every parameter name in
// call order, plus the defaults of the trailing parameters. Defaults are
// right-aligned against Args, so with N args and K defaults the first N-K
// parameters are positional.
type ArgSpec struct {
	Args     []string
	Defaults []any
}

// Handler is the implementation behind a registered command.
type Handler func(ctx context.Context, args BoundArguments) error

// Command is a callable registered under a pointer of the form
// "<module>.<callable>", e.g. "demofunc.manualfill".
type Command struct {
	Pointer string
	Doc     string
	ArgSpec ArgSpec
	Handler Handler
}

// Module returns the module part of the command's pointer.
func (c *Command) Module() string {
	module, _, _ := SplitPointer(c.Pointer)
	return module
}

// Name returns the callable part of the command's pointer.
func (c *Command) Name() string {
	_, name, _ := SplitPointer(c.Pointer)
	return name
}

// SplitPointer splits "<module>.<callable>" at the last dot. Modules may
// themselves be dotted ("ops.fills.manualfill" → "ops.fills", "manualfill").
func SplitPointer(pointer string) (module, callable string, err error) {
	i := strings.LastIndex(pointer, ".")
	if i <= 0 || i == len(pointer)-1 {
		return "", "", fmt.Errorf("pointer %q must have the form <module>.<callable>", pointer)
	}
	return pointer[:i], pointer[i+1:], nil
}

// BoundArguments holds the values collected for one invocation.
type BoundArguments struct {
	Positional []any
	Keyword    map[string]any
}

// NewBoundArguments returns an empty, ready to fill binding.
func NewBoundArguments() BoundArguments {
	return BoundArguments{
		Positional: []any{},
		Keyword:    make(map[string]any),
	}
}

// Len returns the total number of bound values.
func (b BoundArguments) Len() int {
	return len(b.Positional) + len(b.Keyword)
}

// Bind stores an accepted value for spec.
func (b *BoundArguments) Bind(spec ParamSpec, value any) {
	if spec.IsKeyword() {
		if b.Keyword == nil {
			b.Keyword = make(map[string]any)
		}
		b.Keyword[spec.Name] = value
		return
	}
	b.Positional = append(b.Positional, value)
}

// PromptOutcome is the result of one prompt attempt: either an accepted
// value or the reason the raw input was rejected.
type PromptOutcome struct {
	Value    any
	Accepted bool
	Reason   error
}

// Accept returns an accepted outcome.
func Accept(v any) PromptOutcome {
	return PromptOutcome{Value: v, Accepted: true}
}

// Reject returns a rejected outcome.
func Reject(reason error) PromptOutcome {
	return PromptOutcome{Reason: reason}
}
