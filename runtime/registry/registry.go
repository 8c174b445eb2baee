// Package registry holds the commands an argfeed binary can run. Commands are
// registered once at startup under their "<module>.<callable>" pointer; the
// config file can only name commands that were registered, so no code is
// ever located from a free-form string at call time.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/opal-lang/argfeed/core/types"
)

var (
	// ErrModuleNotFound means no command is registered under the module.
	ErrModuleNotFound = errors.New("module not found")
	// ErrCallableNotFound means the module exists but not the callable.
	ErrCallableNotFound = errors.New("callable not found")
)

// Registry maps modules to their callables.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]*types.Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[string]map[string]*types.Command)}
}

// Register validates cmd and adds it under its pointer.
func (r *Registry) Register(cmd *types.Command) error {
	if err := types.ValidateCommand(cmd); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	module, callable, _ := types.SplitPointer(cmd.Pointer)

	r.mu.Lock()
	defer r.mu.Unlock()

	callables, ok := r.modules[module]
	if !ok {
		callables = make(map[string]*types.Command)
		r.modules[module] = callables
	}
	if _, exists := callables[callable]; exists {
		return fmt.Errorf("register: command %s already registered", cmd.Pointer)
	}
	callables[callable] = cmd
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *Registry) MustRegister(cmds ...*types.Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the command registered as module.callable. The error is
// ErrModuleNotFound or ErrCallableNotFound.
func (r *Registry) Lookup(module, callable string) (*types.Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	callables, ok := r.modules[module]
	if !ok {
		return nil, ErrModuleNotFound
	}
	cmd, ok := callables[callable]
	if !ok {
		return nil, ErrCallableNotFound
	}
	return cmd, nil
}

// Pointers lists every registered pointer, sorted.
func (r *Registry) Pointers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for module, callables := range r.modules {
		for callable := range callables {
			out = append(out, module+"."+callable)
		}
	}
	sort.Strings(out)
	return out
}
