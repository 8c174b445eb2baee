// Package signature turns a command's declared ArgSpec into the ordered
// parameter list the prompter walks.
package signature

import (
	"fmt"
	"strings"

	"github.com/opal-lang/argfeed/core/invariant"
	"github.com/opal-lang/argfeed/core/types"
)

// Inspect returns the command's parameters in declaration order.
func Inspect(cmd *types.Command) []types.ParamSpec {
	invariant.NotNil(cmd, "cmd")
	return FromArgSpec(cmd.ArgSpec)
}

// FromArgSpec zips names with right-aligned defaults: with N names and K
// defaults, the first N-K parameters are positional and the last K carry
// defaults in order.
func FromArgSpec(spec types.ArgSpec) []types.ParamSpec {
	n, k := len(spec.Args), len(spec.Defaults)
	invariant.Precondition(k <= n, "%d defaults for %d parameters", k, n)

	positional := n - k
	params := make([]types.ParamSpec, n)
	for i, name := range spec.Args {
		params[i] = types.ParamSpec{Name: name}
		if i >= positional {
			params[i].HasDefault = true
			params[i].Default = spec.Defaults[i-positional]
		}
	}

	invariant.Postcondition(Positional(params) == positional, "positional parameters must precede defaulted ones")
	return params
}

// Positional counts the leading parameters without a default.
func Positional(params []types.ParamSpec) int {
	n := 0
	for _, p := range params {
		if p.HasDefault {
			break
		}
		n++
	}
	return n
}

// Describe renders the parameter listing shown before prompting, e.g.
// "[orderid, fill, dbtype=LIVE]".
func Describe(params []types.ParamSpec) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.HasDefault {
			parts[i] = fmt.Sprintf("%s=%v", p.Name, p.Default)
		} else {
			parts[i] = p.Name
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
