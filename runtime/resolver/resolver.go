// Package resolver maps a command name from the config file to a registered
// command and its coercion directives.
package resolver

import (
	"errors"

	"github.com/lithammer/fuzzysearch/fuzzy"
	log "github.com/sirupsen/logrus"

	"github.com/opal-lang/argfeed/core/invariant"
	"github.com/opal-lang/argfeed/core/types"
	"github.com/opal-lang/argfeed/internal/logging"
	"github.com/opal-lang/argfeed/runtime/config"
	"github.com/opal-lang/argfeed/runtime/registry"
)

// Resolver joins a loaded command list with the registry.
type Resolver struct {
	cfg *config.File
	reg *registry.Registry
	log *log.Entry
}

// New returns a Resolver. A nil logger discards diagnostics.
func New(cfg *config.File, reg *registry.Registry, logger *log.Entry) *Resolver {
	invariant.NotNil(cfg, "cfg")
	invariant.NotNil(reg, "reg")
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{cfg: cfg, reg: reg, log: logger}
}

// Resolve returns the command configured under name and its directives.
// Errors are *types.ConfigurationError for an unknown name and
// *types.ResolutionError for a pointer that names an unregistered module or
// callable.
func (r *Resolver) Resolve(name string) (*types.Command, types.Directives, error) {
	rec, ok := r.cfg.Lookup(name)
	if !ok {
		return nil, nil, &types.ConfigurationError{
			Source:     r.cfg.Source,
			Command:    name,
			Suggestion: closestMatch(name, r.cfg.Names()),
		}
	}

	module, callable, err := types.SplitPointer(rec.Pointer)
	if err != nil {
		return nil, nil, &types.ConfigurationError{Source: r.cfg.Source, Err: err}
	}

	r.log.WithFields(log.Fields{"module": module, "callable": callable}).Debug("resolving command")

	cmd, err := r.reg.Lookup(module, callable)
	switch {
	case errors.Is(err, registry.ErrModuleNotFound):
		return nil, nil, &types.ResolutionError{
			Kind: types.MissingModule, Command: name, Module: module, Source: r.cfg.Source,
		}
	case errors.Is(err, registry.ErrCallableNotFound):
		return nil, nil, &types.ResolutionError{
			Kind: types.MissingCallable, Command: name, Module: module, Callable: callable, Source: r.cfg.Source,
		}
	case err != nil:
		return nil, nil, err
	}

	directives := rec.Directives()
	for param, desc := range directives {
		if !types.KnownDescriptor(desc) {
			r.log.WithFields(log.Fields{"param": param, "type": desc}).Warn("unknown typecast descriptor, input for this parameter will be rejected")
		}
	}
	return cmd, directives, nil
}

// closestMatch returns the best fuzzy match for target, or "".
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		// Over-typed names never match as the needle; retry with each
		// candidate as the needle so "manualfills" still finds "manualfill".
		for _, c := range candidates {
			if fuzzy.MatchFold(c, target) {
				return c
			}
		}
		return ""
	}
	best := ranks[0]
	for _, rk := range ranks[1:] {
		if rk.Distance < best.Distance {
			best = rk
		}
	}
	return best.Target
}
