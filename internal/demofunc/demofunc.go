// Package demofunc holds sample commands for trying argfeed out.
package demofunc

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/opal-lang/argfeed/core/types"
	"github.com/opal-lang/argfeed/runtime/registry"
)

// Register adds the demo commands to reg. Their output goes to out.
func Register(reg *registry.Registry, out io.Writer) {
	reg.MustRegister(Commands(out)...)
}

// Commands returns the demo commands writing to out.
func Commands(out io.Writer) []*types.Command {
	return []*types.Command{
		types.NewCommand("demofunc.manualfill").
			Doc(`Do a manual fill in the trading system

Manually apply a fill to an order; mark an order as completed; unlock the positions table.

Dummy function to test argfeed`).
			Param("orderid").Done().
			Param("fill").Done().
			Param("fill_price").Done().
			Param("dbtype").Default("LIVE").Done().
			Param("IBtype").Default("LIVE").Done().
			Handler(func(_ context.Context, args types.BoundArguments) error {
				_, err := fmt.Fprintf(out, "Done a fill of %v for order %v at price %v (%v, %v)\n",
					args.Positional[1], args.Positional[0], args.Positional[2],
					args.Keyword["dbtype"], args.Keyword["IBtype"])
				return err
			}).
			MustBuild(),

		types.NewCommand("demofunc.echo").
			Doc("Print a message a number of times").
			Param("message").Done().
			Param("times").Default(1).Done().
			Handler(func(_ context.Context, args types.BoundArguments) error {
				times, ok := args.Keyword["times"].(int)
				if !ok {
					return fmt.Errorf("times must be an integer, got %T (add a typecast for it)", args.Keyword["times"])
				}
				_, err := fmt.Fprintln(out, strings.TrimSpace(strings.Repeat(fmt.Sprintf("%v ", args.Positional[0]), times)))
				return err
			}).
			MustBuild(),

		types.NewCommand("demofunc.ping").
			Handler(func(context.Context, types.BoundArguments) error {
				_, err := fmt.Fprintln(out, "pong")
				return err
			}).
			MustBuild(),
	}
}
