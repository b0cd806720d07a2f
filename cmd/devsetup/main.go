package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "devsetup",
	Short:         "Development environment checks and setup for Career Pathway AI Assistant",
	Long:          "devsetup checks that Node.js, npm, MongoDB and the project's node_modules are in place, probes the local database, and walks through first-time setup.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}
