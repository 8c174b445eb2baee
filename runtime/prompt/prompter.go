// Package prompt binds a command's parameters by asking the operator for each
// value in turn.
//
// Every parameter runs a two-state machine: prompting until a line of input is
// acceptable, then accepted. Empty input on a parameter without a default and
// input that fails its type coercion both send the machine back to prompting
// with a diagnostic; there is no retry limit. The only way out of an
// unaccepted parameter is ErrAborted, raised when the input stream closes or
// the context is cancelled.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/opal-lang/argfeed/core/invariant"
	"github.com/opal-lang/argfeed/core/types"
	"github.com/opal-lang/argfeed/internal/logging"
)

// DefaultConfigSource is named in coercion diagnostics when no source is set.
const DefaultConfigSource = "commandlist.yaml"

// Prompter reads operator input and binds it to parameters.
type Prompter struct {
	lines  *lineReader
	out    io.Writer
	source string
	log    *log.Entry
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithConfigSource sets the config file named in coercion diagnostics.
func WithConfigSource(path string) Option {
	return func(p *Prompter) {
		if path != "" {
			p.source = path
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Entry) Option {
	return func(p *Prompter) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Prompter reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	invariant.NotNil(in, "in")
	invariant.NotNil(out, "out")

	p := &Prompter{
		lines:  newLineReader(in),
		out:    out,
		source: DefaultConfigSource,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Bind prompts for every parameter in order and returns the finished binding.
// Directives for parameters that params does not declare are ignored.
func (p *Prompter) Bind(ctx context.Context, params []types.ParamSpec, directives types.Directives) (types.BoundArguments, error) {
	if unused := directives.Unused(params); len(unused) > 0 {
		p.log.WithField("params", unused).Debug("ignoring typecast entries for undeclared parameters")
	}

	bound := types.NewBoundArguments()
	for _, spec := range params {
		value, err := p.Prompt(ctx, spec, directives)
		if err != nil {
			return types.BoundArguments{}, fmt.Errorf("parameter %s: %w", spec.Name, err)
		}
		bound.Bind(spec, value)
	}

	invariant.Postcondition(bound.Len() == len(params), "bound %d of %d parameters", bound.Len(), len(params))
	return bound, nil
}

type state int

const (
	statePrompting state = iota
	stateAccepted
)

// Prompt asks for one parameter until the operator supplies an acceptable value.
func (p *Prompter) Prompt(ctx context.Context, spec types.ParamSpec, directives types.Directives) (any, error) {
	descriptor, coerce := directives.Lookup(spec.Name)
	label := Label(spec, descriptor, coerce)

	var outcome types.PromptOutcome
	for st := statePrompting; st == statePrompting; {
		_, _ = fmt.Fprint(p.out, label)

		raw, err := p.lines.next(ctx)
		if err != nil {
			return nil, err
		}

		outcome = Evaluate(raw, spec, descriptor, coerce)
		if outcome.Accepted {
			st = stateAccepted
			continue
		}
		p.reject(spec, outcome.Reason)
	}

	p.log.WithFields(log.Fields{"param": spec.Name, "value": outcome.Value}).Debug("accepted")
	return outcome.Value, nil
}

// Evaluate applies one line of raw input to spec:
//
//	empty, has default         → accept the default as declared
//	empty, no default          → reject with ErrMissingValue
//	non-empty, coercion set    → accept the coerced value or reject with *CoercionError
//	non-empty, no coercion     → accept raw
func Evaluate(raw string, spec types.ParamSpec, descriptor string, coerce bool) types.PromptOutcome {
	if raw == "" {
		if spec.IsKeyword() {
			return types.Accept(spec.Default)
		}
		return types.Reject(types.ErrMissingValue)
	}

	if !coerce {
		return types.Accept(raw)
	}

	v, err := types.Coerce(descriptor, raw)
	if err != nil {
		return types.Reject(err)
	}
	return types.Accept(v)
}

// Label renders the prompt for one parameter, e.g.
//
//	Argument dbtype (default: 'LIVE')?
//	Argument fill (type: int)?
func Label(spec types.ParamSpec, descriptor string, coerce bool) string {
	var b strings.Builder
	b.WriteString("Argument ")
	b.WriteString(spec.Name)
	if spec.IsKeyword() {
		fmt.Fprintf(&b, " (default: '%v')", spec.Default)
	}
	if coerce {
		fmt.Fprintf(&b, " (type: %s)", descriptor)
	}
	b.WriteString("? ")
	return b.String()
}

func (p *Prompter) reject(spec types.ParamSpec, reason error) {
	p.log.WithField("param", spec.Name).WithError(reason).Debug("rejected input")

	var cerr *types.CoercionError
	switch {
	case errors.Is(reason, types.ErrMissingValue):
		_, _ = fmt.Fprintln(p.out, "No default - need a value. Please type something!")
	case errors.As(reason, &cerr):
		_, _ = fmt.Fprintf(p.out, "\nCouldn't cast value %s to type %s: retype or check %s\n\n", cerr.Value, cerr.Type, p.source)
	default:
		_, _ = fmt.Fprintf(p.out, "Invalid value: %v\n", reason)
	}
}
