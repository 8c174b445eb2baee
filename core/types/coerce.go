package types

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownDescriptor is returned when a type descriptor has no entry in
// the coercion table.
var ErrUnknownDescriptor = errors.New("unknown type descriptor")

// Coercer converts raw operator input into a typed value.
type Coercer func(raw string) (any, error)

// Directives maps parameter names to type descriptors ("int", "float", ...).
// A parameter without an entry is bound as the raw string.
type Directives map[string]string

// Lookup returns the descriptor for a parameter, if any.
func (d Directives) Lookup(param string) (string, bool) {
	if d == nil {
		return "", false
	}
	desc, ok := d[param]
	return desc, ok
}

// Unused returns the directive names that match none of params, sorted.
func (d Directives) Unused(params []ParamSpec) []string {
	declared := make(map[string]bool, len(params))
	for _, p := range params {
		declared[p.Name] = true
	}
	var unused []string
	for name := range d {
		if !declared[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	return unused
}

// coercers is the closed descriptor table. Descriptors from configuration
// are only ever looked up here, never evaluated.
var coercers = map[string]Coercer{
	"int":      coerceInt,
	"integer":  coerceInt,
	"float":    coerceFloat,
	"float64":  coerceFloat,
	"number":   coerceFloat,
	"bool":     coerceBool,
	"boolean":  coerceBool,
	"str":      coerceString,
	"string":   coerceString,
	"duration": coerceDuration,
}

// Coerce converts raw according to descriptor. Failures are returned as
// *CoercionError.
func Coerce(descriptor, raw string) (any, error) {
	fn, ok := coercers[descriptor]
	if !ok {
		return nil, &CoercionError{Value: raw, Type: descriptor, Err: ErrUnknownDescriptor}
	}
	v, err := fn(raw)
	if err != nil {
		return nil, &CoercionError{Value: raw, Type: descriptor, Err: err}
	}
	return v, nil
}

// KnownDescriptor reports whether descriptor has a coercion.
func KnownDescriptor(descriptor string) bool {
	_, ok := coercers[descriptor]
	return ok
}

// Descriptors lists every supported descriptor, sorted.
func Descriptors() []string {
	out := make([]string, 0, len(coercers))
	for name := range coercers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func coerceInt(raw string) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return n, nil
}

func coerceFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func coerceBool(raw string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return b, nil
}

func coerceString(raw string) (any, error) {
	return raw, nil
}

func coerceDuration(raw string) (any, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid duration: %w", err)
	}
	return d, nil
}
