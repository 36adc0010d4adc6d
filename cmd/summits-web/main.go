package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "summits-web",
		Short: "Web tier of the summit climbing log",
		Long: `summits-web renders the climbing log pages over HTMX.

It asks the climbing-log API who the visitor is, keeps list pagination
in the page query parameter and sends anonymous visitors to the login
flow when a page needs a user.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		routesCmd(),
		whoamiCmd(),
	)
	return root
}
