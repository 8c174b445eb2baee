package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opal-lang/argfeed/core/types"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitUsage           = 1
	ExitConfigError     = 2
	ExitResolutionError = 3
	ExitInvocationError = 4
	ExitAborted         = 130
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "config", "resolve", "invoke", "input"
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	var (
		cfgErr     *types.ConfigurationError
		resolveErr *types.ResolutionError
		invokeErr  *types.InvocationError
		cliErr     *CLIError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, types.ErrAborted):
		return ExitAborted
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &resolveErr):
		return ExitResolutionError
	case errors.As(err, &invokeErr):
		return ExitInvocationError
	case errors.As(err, &cliErr) && cliErr.Type == "config":
		return ExitConfigError
	default:
		return ExitUsage
	}
}

// Explain converts the runtime error taxonomy into a CLIError.
func Explain(err error) *CLIError {
	var (
		cfgErr     *types.ConfigurationError
		resolveErr *types.ResolutionError
		invokeErr  *types.InvocationError
		cliErr     *CLIError
	)
	switch {
	case errors.As(err, &cliErr):
		return cliErr
	case errors.Is(err, types.ErrAborted):
		return &CLIError{Type: "input", Message: "Aborted before all arguments were supplied", Details: err.Error()}
	case errors.As(err, &cfgErr) && cfgErr.Command != "":
		hint := "Run without a command name to list the available commands"
		if cfgErr.Suggestion != "" {
			hint = fmt.Sprintf("Did you mean %q?", cfgErr.Suggestion)
		}
		return &CLIError{
			Type:    "config",
			Message: fmt.Sprintf("Command %q not found in config file %s", cfgErr.Command, cfgErr.Source),
			Hint:    hint,
		}
	case errors.As(err, &cfgErr):
		return &CLIError{Type: "config", Message: cfgErr.Error(), Hint: fmt.Sprintf("Check file %s", cfgErr.Source)}
	case errors.As(err, &resolveErr):
		return &CLIError{Type: "resolve", Message: resolveErr.Error(), Hint: fmt.Sprintf("Check file %s", resolveErr.Source)}
	case errors.As(err, &invokeErr):
		return &CLIError{Type: "invoke", Message: invokeErr.Error()}
	default:
		return &CLIError{Message: err.Error()}
	}
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}
	e := Explain(err)

	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), e.Message)
	if e.Details != "" {
		_, _ = fmt.Fprintf(w, "%s\n", Colorize("  "+e.Details, ColorGray, useColor))
	}
	if e.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), e.Hint)
	}
}
