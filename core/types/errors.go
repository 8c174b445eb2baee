package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingValue rejects empty input for a parameter without a default.
	ErrMissingValue = errors.New("no default, need a value")

	// ErrAborted stops prompting when input closes or the run is cancelled.
	ErrAborted = errors.New("input aborted")
)

// CoercionError rejects input that could not be converted to its declared type.
type CoercionError struct {
	Value string
	Type  string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot cast value %q to type %s: %v", e.Value, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ConfigurationError covers an unreadable or invalid config file, and a
// command name the file does not define.
type ConfigurationError struct {
	Source     string // config file path
	Command    string // set when the command name was not found
	Suggestion string // closest known command name, if any
	Err        error
}

func (e *ConfigurationError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("command %q not found in config file %s", e.Command, e.Source)
	}
	return fmt.Sprintf("config file %s: %v", e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ResolutionKind says which half of a pointer failed to resolve.
type ResolutionKind string

const (
	MissingModule   ResolutionKind = "module"
	MissingCallable ResolutionKind = "callable"
)

// ResolutionError reports a pointer whose module or callable is not registered.
type ResolutionError struct {
	Kind     ResolutionKind
	Command  string // command name from the config file
	Module   string
	Callable string
	Source   string // config file path
}

func (e *ResolutionError) Error() string {
	if e.Kind == MissingModule {
		return fmt.Sprintf("NOT FOUND: module %s specified for command %s", e.Module, e.Command)
	}
	return fmt.Sprintf("NOT FOUND: callable %s in module %s specified for command %s", e.Callable, e.Module, e.Command)
}

// InvocationError wraps a failure returned by a command's handler.
type InvocationError struct {
	Pointer string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Pointer, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
