// Package invoke calls a registered command with its bound arguments.
package invoke

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"github.com/opal-lang/argfeed/core/invariant"
	"github.com/opal-lang/argfeed/core/signature"
	"github.com/opal-lang/argfeed/core/types"
	"github.com/opal-lang/argfeed/internal/logging"
)

// Invoker runs commands and reports start and completion on out.
type Invoker struct {
	out io.Writer
	log *log.Entry
}

// New returns an Invoker. A nil logger discards diagnostics.
func New(out io.Writer, logger *log.Entry) *Invoker {
	invariant.NotNil(out, "out")
	if logger == nil {
		logger = logging.Discard()
	}
	return &Invoker{out: out, log: logger}
}

// Invoke calls cmd's handler with args. A handler error is returned as
// *types.InvocationError and the completion marker is not written; a handler
// panic is not recovered.
func (iv *Invoker) Invoke(ctx context.Context, cmd *types.Command, args types.BoundArguments) error {
	invariant.NotNil(cmd, "cmd")
	params := signature.Inspect(cmd)
	invariant.Precondition(len(args.Positional) == signature.Positional(params),
		"%s: %d positional values for %d positional parameters", cmd.Pointer, len(args.Positional), signature.Positional(params))
	invariant.Precondition(args.Len() == len(params),
		"%s: %d values for %d parameters", cmd.Pointer, args.Len(), len(params))

	entry := iv.log.WithFields(log.Fields{
		"command":     cmd.Pointer,
		"fingerprint": Fingerprint(cmd.Pointer, args),
	})
	entry.WithFields(log.Fields{"args": args.Positional, "kwargs": args.Keyword}).Debug("running command")

	_, _ = fmt.Fprint(iv.out, "\n\n")
	start := time.Now()
	if err := cmd.Handler(ctx, args); err != nil {
		entry.WithError(err).Error("command failed")
		return &types.InvocationError{Pointer: cmd.Pointer, Err: err}
	}
	entry.WithField("elapsed", time.Since(start)).Info("command finished")

	_, _ = fmt.Fprint(iv.out, "\nFinished\n\n")
	return nil
}

// Fingerprint returns a short blake2b digest of a pointer and its bound
// arguments. Equal bindings give equal fingerprints regardless of keyword
// map order, so a run can be matched against the target's own records.
func Fingerprint(pointer string, args types.BoundArguments) string {
	h, err := blake2b.New256(nil)
	invariant.ExpectNoError(err, "blake2b.New256")

	_, _ = fmt.Fprintf(h, "%s\x00", pointer)
	for _, v := range args.Positional {
		_, _ = fmt.Fprintf(h, "p\x00%T\x00%v\x00", v, v)
	}
	names := make([]string, 0, len(args.Keyword))
	for name := range args.Keyword {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := args.Keyword[name]
		_, _ = fmt.Fprintf(h, "k\x00%s\x00%T\x00%v\x00", name, v, v)
	}

	return hex.EncodeToString(h.Sum(nil)[:8])
}
