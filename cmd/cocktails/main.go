// ABOUTME: Entry point for the cocktails command line client
// ABOUTME: Builds the cobra command tree and exits non-zero on failure

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cocktails-app-api/cmd/cocktails/cli"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
