package cli

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/opal-lang/argfeed/core/signature"
	"github.com/opal-lang/argfeed/internal/logging"
	"github.com/opal-lang/argfeed/runtime/config"
	"github.com/opal-lang/argfeed/runtime/invoke"
	"github.com/opal-lang/argfeed/runtime/prompt"
	"github.com/opal-lang/argfeed/runtime/resolver"
)

// runCommand resolves name, shows its documentation and parameters, prompts
// for every argument and invokes it.
func runCommand(ctx context.Context, opts Options, cfg *config.File, name string, logger *log.Logger) error {
	res := resolver.New(cfg, opts.Registry, logging.Component(logger, "resolver"))
	cmd, directives, err := res.Resolve(name)
	if err != nil {
		return err
	}
	logging.Component(logger, "cli").WithFields(log.Fields{
		"command":  name,
		"callable": cmd.Name(),
		"module":   cmd.Module(),
	}).Debug("running command")

	params := signature.Inspect(cmd)

	out := opts.Stdout
	if doc := strings.TrimSpace(cmd.Doc); doc != "" {
		_, _ = fmt.Fprintf(out, "\n%s\n\n", doc)
	}
	_, _ = fmt.Fprintf(out, "Arguments:\n%s\n\n", signature.Describe(params))

	p := prompt.New(opts.Stdin, out,
		prompt.WithConfigSource(cfg.Source),
		prompt.WithLogger(logging.Component(logger, "prompt")),
	)
	bound, err := p.Bind(ctx, params, directives)
	if err != nil {
		return err
	}

	return invoke.New(out, logging.Component(logger, "invoke")).Invoke(ctx, cmd, bound)
}
