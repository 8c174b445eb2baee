package types

import (
	"errors"
	"fmt"
	"strings"
)

// CommandBuilder provides a fluent API for declaring a command's signature.
//
//	cmd, err := types.NewCommand("demofunc.manualfill").
//	    Doc("Do a manual fill in the trading system").
//	    Param("orderid").Done().
//	    Param("dbtype").Default("LIVE").Done().
//	    Handler(manualFill).
//	    Build()
type CommandBuilder struct {
	cmd    Command
	params []paramDecl
}

type paramDecl struct {
	name       string
	hasDefault bool
	value      any
}

// NewCommand starts a command declaration for pointer.
func NewCommand(pointer string) *CommandBuilder {
	return &CommandBuilder{cmd: Command{Pointer: pointer}}
}

// Doc sets the help text shown before prompting.
func (b *CommandBuilder) Doc(doc string) *CommandBuilder {
	b.cmd.Doc = doc
	return b
}

// Param adds a parameter in declaration order and returns a ParamBuilder.
func (b *CommandBuilder) Param(name string) *ParamBuilder {
	return &ParamBuilder{builder: b, decl: paramDecl{name: name}}
}

// Handler sets the implementation.
func (b *CommandBuilder) Handler(h Handler) *CommandBuilder {
	b.cmd.Handler = h
	return b
}

// Build assembles the ArgSpec and validates the result.
func (b *CommandBuilder) Build() (*Command, error) {
	cmd := b.cmd
	cmd.ArgSpec = ArgSpec{Args: make([]string, 0, len(b.params))}

	for _, p := range b.params {
		if !p.hasDefault && len(cmd.ArgSpec.Defaults) > 0 {
			return nil, fmt.Errorf("command %s: parameter %q has no default but follows a defaulted parameter", cmd.Pointer, p.name)
		}
		cmd.ArgSpec.Args = append(cmd.ArgSpec.Args, p.name)
		if p.hasDefault {
			cmd.ArgSpec.Defaults = append(cmd.ArgSpec.Defaults, p.value)
		}
	}

	if err := ValidateCommand(&cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}

// MustBuild is Build for static declarations; it panics on an invalid command.
func (b *CommandBuilder) MustBuild() *Command {
	cmd, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cmd
}

// ParamBuilder configures one parameter.
type ParamBuilder struct {
	builder *CommandBuilder
	decl    paramDecl
}

// Default sets the default value; the parameter becomes a keyword parameter.
// A nil default is still a default.
func (pb *ParamBuilder) Default(v any) *ParamBuilder {
	pb.decl.hasDefault = true
	pb.decl.value = v
	return pb
}

// Done finishes this parameter and returns to the command builder.
func (pb *ParamBuilder) Done() *CommandBuilder {
	pb.builder.params = append(pb.builder.params, pb.decl)
	return pb.builder
}

// ValidateCommand checks a command declaration.
func ValidateCommand(cmd *Command) error {
	if cmd == nil {
		return errors.New("command cannot be nil")
	}
	if _, _, err := SplitPointer(cmd.Pointer); err != nil {
		return err
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %s: handler cannot be nil", cmd.Pointer)
	}

	spec := cmd.ArgSpec
	if len(spec.Defaults) > len(spec.Args) {
		return fmt.Errorf("command %s: %d defaults for %d parameters", cmd.Pointer, len(spec.Defaults), len(spec.Args))
	}

	seen := make(map[string]bool, len(spec.Args))
	for _, name := range spec.Args {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("command %s: parameter name cannot be empty", cmd.Pointer)
		}
		if seen[name] {
			return fmt.Errorf("command %s: duplicate parameter %q", cmd.Pointer, name)
		}
		seen[name] = true
	}
	return nil
}
