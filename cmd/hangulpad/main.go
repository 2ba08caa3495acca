package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hangulpad/internal/app"
	"hangulpad/internal/cli"
	"hangulpad/internal/layout"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hangulpad: %v\n", err)
		os.Exit(1)
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}

	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewRuntime(opts).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hangulpad: %v\n", err)
		stop()
		os.Exit(1)
	}
}
