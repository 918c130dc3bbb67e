package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"podpublisher/internal/config"
	"podpublisher/internal/scheduler"
	"podpublisher/internal/store"
)

func newEnqueueCommand() *cobra.Command {
	var (
		startFlag   string
		interval    time.Duration
		titles      []string
		description string
	)

	cmd := &cobra.Command{
		Use:   "enqueue <source-ref>...",
		Short: "Schedule videos for publication at staggered times",
		Long: "Enqueue creates one pending task per source reference. The first is " +
			"scheduled at --start, each following one --interval later. A source " +
			"reference is a local file path, an http(s) URL, a YouTube watch URL, " +
			"or drive:<fileid>.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			start := time.Now().UTC()
			if startFlag != "" {
				start, err = time.Parse(time.RFC3339, startFlag)
				if err != nil {
					return fmt.Errorf("invalid --start value: %w", err)
				}
			}

			items := make([]scheduler.BatchItem, 0, len(args))
			for i, ref := range args {
				title := titleForRef(ref)
				if i < len(titles) {
					title = titles[i]
				}
				items = append(items, scheduler.BatchItem{
					Title:       title,
					Description: description,
					SourceRef:   ref,
				})
			}

			tasks, err := scheduler.NewBatch(items, start, interval)
			if err != nil {
				return err
			}
			if err := store.NewTaskStore(cfg.TasksPath()).Append(tasks); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range tasks {
				fmt.Fprintf(out, "enqueued task %s (%q) scheduled at %s\n", t.ID, t.Title, t.ScheduledAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "schedule time of the first task, RFC 3339 (default: now)")
	cmd.Flags().DurationVar(&interval, "interval", 48*time.Hour, "spacing between consecutive tasks")
	cmd.Flags().StringArrayVar(&titles, "title", nil, "episode title per source, in order (default: file name)")
	cmd.Flags().StringVar(&description, "description", "", "episode description applied to all enqueued tasks")

	return cmd
}

// titleForRef derives a fallback title from the source reference.
func titleForRef(ref string) string {
	base := filepath.Base(strings.TrimSuffix(ref, "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
