package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opal-lang/argfeed/core/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "config", err: &types.ConfigurationError{Source: "x", Command: "y"}, want: ExitConfigError},
		{name: "wrapped config", err: fmt.Errorf("load: %w", &types.ConfigurationError{Source: "x"}), want: ExitConfigError},
		{name: "resolve", err: &types.ResolutionError{Kind: types.MissingModule}, want: ExitResolutionError},
		{name: "invoke", err: &types.InvocationError{Pointer: "a.b", Err: errors.New("x")}, want: ExitInvocationError},
		{name: "aborted", err: fmt.Errorf("parameter fill: %w", types.ErrAborted), want: ExitAborted},
		{name: "cli config", err: &CLIError{Type: "config", Message: "m"}, want: ExitConfigError},
		{name: "other", err: errors.New("unknown flag: --nope"), want: ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExplain(t *testing.T) {
	e := Explain(&types.ConfigurationError{Source: "commandlist.yaml", Command: "zap"})
	assert.Equal(t, "config", e.Type)
	assert.Equal(t, "Run without a command name to list the available commands", e.Hint)

	e = Explain(&types.ConfigurationError{Source: "commandlist.yaml", Err: errors.New("parse yaml: bad")})
	assert.Equal(t, "config file commandlist.yaml: parse yaml: bad", e.Message)
	assert.Equal(t, "Check file commandlist.yaml", e.Hint)

	e = Explain(&types.InvocationError{Pointer: "a.b", Err: errors.New("boom")})
	assert.Equal(t, "invoke", e.Type)
	assert.Empty(t, e.Hint)

	own := &CLIError{Message: "as is"}
	assert.Same(t, own, Explain(own))
}

func TestFormatError_Color(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, &types.ConfigurationError{Source: "c.yaml", Command: "zap", Suggestion: "zip"}, true)

	out := buf.String()
	assert.Contains(t, out, ColorRed+"Error: "+ColorReset)
	assert.Contains(t, out, ColorYellow+"Hint: "+ColorReset+`Did you mean "zip"?`)
}

func TestFormatError_Nil(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, nil, false)
	assert.Empty(t, buf.String())
}

func TestCLIError_Error(t *testing.T) {
	e := &CLIError{Message: "m", Details: "d", Hint: "h"}
	assert.Equal(t, "m\nd\nh", e.Error())
}

func TestShouldUseColor(t *testing.T) {
	assert.False(t, ShouldUseColor(true, &bytes.Buffer{}))
	assert.False(t, ShouldUseColor(false, &bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColor(false, &bytes.Buffer{}))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "x", Colorize("x", ColorRed, false))
	assert.Equal(t, ColorRed+"x"+ColorReset, Colorize("x", ColorRed, true))
}
