package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/opal-lang/argfeed/cli"
	"github.com/opal-lang/argfeed/internal/demofunc"
	"github.com/opal-lang/argfeed/runtime/registry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	reg := registry.New()
	demofunc.Register(reg, os.Stdout)

	code := cli.Execute(ctx, cli.Options{
		Registry: reg,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}, os.Args[1:])

	stop()
	os.Exit(code)
}
