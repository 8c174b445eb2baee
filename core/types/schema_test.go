package types

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, BoundArguments) error { return nil }

func TestCommandBuilder_RightAlignsDefaults(t *testing.T) {
	cmd, err := NewCommand("demofunc.manualfill").
		Doc("Do a manual fill").
		Param("orderid").Done().
		Param("fill").Done().
		Param("fill_price").Done().
		Param("dbtype").Default("LIVE").Done().
		Param("IBtype").Default("LIVE").Done().
		Handler(noop).
		Build()
	require.NoError(t, err)

	want := ArgSpec{
		Args:     []string{"orderid", "fill", "fill_price", "dbtype", "IBtype"},
		Defaults: []any{"LIVE", "LIVE"},
	}
	if diff := cmp.Diff(want, cmd.ArgSpec); diff != "" {
		t.Errorf("ArgSpec mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "demofunc", cmd.Module())
	assert.Equal(t, "manualfill", cmd.Name())
	assert.Equal(t, "Do a manual fill", cmd.Doc)
}

func TestCommandBuilder_NilDefaultIsADefault(t *testing.T) {
	cmd, err := NewCommand("ops.purge").
		Param("table").Done().
		Param("before").Default(nil).Done().
		Handler(noop).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, cmd.ArgSpec.Defaults)
}

func TestCommandBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *CommandBuilder
		wantErr string
	}{
		{
			name: "positional after defaulted",
			builder: NewCommand("demofunc.bad").
				Param("a").Default(1).Done().
				Param("b").Done().
				Handler(noop),
			wantErr: `parameter "b" has no default but follows a defaulted parameter`,
		},
		{
			name: "duplicate parameter",
			builder: NewCommand("demofunc.bad").
				Param("a").Done().
				Param("a").Done().
				Handler(noop),
			wantErr: `duplicate parameter "a"`,
		},
		{
			name: "empty parameter name",
			builder: NewCommand("demofunc.bad").
				Param(" ").Done().
				Handler(noop),
			wantErr: "parameter name cannot be empty",
		},
		{
			name:    "missing handler",
			builder: NewCommand("demofunc.bad"),
			wantErr: "handler cannot be nil",
		},
		{
			name:    "pointer without module",
			builder: NewCommand("manualfill").Handler(noop),
			wantErr: "must have the form <module>.<callable>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCommandBuilder_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCommand("nodot").Handler(noop).MustBuild()
	})
}

func TestValidateCommand_TooManyDefaults(t *testing.T) {
	cmd := &Command{
		Pointer: "demofunc.f",
		ArgSpec: ArgSpec{Args: []string{"a"}, Defaults: []any{1, 2}},
		Handler: noop,
	}
	err := ValidateCommand(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 defaults for 1 parameters")
}

func TestSplitPointer(t *testing.T) {
	tests := []struct {
		pointer      string
		wantModule   string
		wantCallable string
		wantErr      bool
	}{
		{pointer: "demofunc.manualfill", wantModule: "demofunc", wantCallable: "manualfill"},
		{pointer: "ops.fills.manualfill", wantModule: "ops.fills", wantCallable: "manualfill"},
		{pointer: "manualfill", wantErr: true},
		{pointer: ".manualfill", wantErr: true},
		{pointer: "demofunc.", wantErr: true},
		{pointer: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.pointer, func(t *testing.T) {
			module, callable, err := SplitPointer(tt.pointer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModule, module)
			assert.Equal(t, tt.wantCallable, callable)
		})
	}
}

func TestBoundArguments_Bind(t *testing.T) {
	b := NewBoundArguments()
	b.Bind(ParamSpec{Name: "orderid"}, "100")
	b.Bind(ParamSpec{Name: "fill"}, 5)
	b.Bind(ParamSpec{Name: "dbtype", HasDefault: true, Default: "LIVE"}, "TEST")

	want := BoundArguments{
		Positional: []any{"100", 5},
		Keyword:    map[string]any{"dbtype": "TEST"},
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("BoundArguments mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, b.Len())
}

func TestBoundArguments_BindOnZeroValue(t *testing.T) {
	var b BoundArguments
	b.Bind(ParamSpec{Name: "x", HasDefault: true}, 1)
	assert.Equal(t, map[string]any{"x": 1}, b.Keyword)
}
