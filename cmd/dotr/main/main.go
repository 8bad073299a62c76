package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotr/cmd/dotr"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/ui/output/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := dotr.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()

		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsConsistencyViolation(err) {
			fmt.Fprintln(os.Stderr, styles.Render("Muted", "The registry and the storage directory disagree. Inspect the storage repository."))
			fmt.Fprintln(os.Stderr, styles.Render("Muted", "Run with -vv for details, logged to "+logging.LogFilePath()))
		}

		os.Exit(1)
	}
}
