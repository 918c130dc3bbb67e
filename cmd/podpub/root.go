package main

import (
	"github.com/spf13/cobra"
	"podpublisher/internal/scheduler"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "podpub",
		Short:         "Scheduled video-to-podcast publisher",
		Long:          "podpub maintains a durable queue of publication tasks and, on each invocation, runs due tasks through the publication pipeline: acquire the source video, extract audio, upload it, and update the podcast feed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// With no arguments, behave like `run`: process the single next
		// due task.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvocation(cmd, scheduler.FirstMatch)
		},
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newEnqueueCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
