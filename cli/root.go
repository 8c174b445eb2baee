// Package cli implements the argfeed command line: list the configured
// commands, or prompt for one command's arguments and run it.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/opal-lang/argfeed/core/invariant"
	"github.com/opal-lang/argfeed/internal/logging"
	"github.com/opal-lang/argfeed/runtime/config"
	"github.com/opal-lang/argfeed/runtime/registry"
)

// Options wires the CLI to its registry and streams.
type Options struct {
	Registry *registry.Registry
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

type flags struct {
	file    string
	debug   bool
	noColor bool
	json    bool
}

// Execute runs the CLI with args (without the program name) and returns the
// process exit code. Errors are written to opts.Stderr.
func Execute(ctx context.Context, opts Options, args []string) int {
	invariant.NotNil(opts.Registry, "opts.Registry")
	invariant.NotNil(opts.Stdin, "opts.Stdin")
	invariant.NotNil(opts.Stdout, "opts.Stdout")
	invariant.NotNil(opts.Stderr, "opts.Stderr")

	f := &flags{}
	root := newRootCommand(opts, f)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		FormatError(opts.Stderr, err, ShouldUseColor(f.noColor, opts.Stderr))
	}
	return ExitCode(err)
}

func newRootCommand(opts Options, f *flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "argfeed [command]",
		Short: "Prompt for a registered command's arguments, then run it",
		Long: `argfeed looks up a command in the command list, shows its documentation,
asks for each of its arguments in turn and runs it.

Without a command name it lists the commands in the command list.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(opts.Stderr, f.debug)

			cfg, err := config.Load(config.Path(f.file))
			if err != nil {
				return err
			}
			logging.Component(logger, "cli").WithField("source", cfg.Source).Debug("loaded command list")

			if len(args) == 0 {
				return writeListing(opts.Stdout, cmd.Root().Name(), cfg, f.json)
			}
			return runCommand(cmd.Context(), opts, cfg, args[0], logger)
		},
	}

	rootCmd.SetIn(opts.Stdin)
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	rootCmd.PersistentFlags().StringVarP(&f.file, "file", "f", "", "Path to the command list (default $"+config.EnvFile+" or "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&f.json, "json", false, "List commands as JSON")

	return rootCmd
}
