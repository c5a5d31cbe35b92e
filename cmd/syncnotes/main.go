// Package main provides the syncnotes CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Global flags.
var (
	cfgFile string
	verbose bool
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "syncnotes",
		Short: "Turn meeting transcripts into summaries, decisions and action items",
		Long: `syncnotes sends a meeting transcript to the configured LLM provider and prints
a short summary, the decisions taken and the action items with their deadlines.

Providers are read from config.yaml (llm.providers) or, without one, from
AI_PROVIDER plus <PROVIDER>_API_KEY in the environment or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml, ./config.yaml, /etc/syncnotes/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")

	root.AddCommand(newProcessCommand(), newCalendarAuthCommand())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
