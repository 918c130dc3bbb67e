package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"podpublisher/internal/config"
	"podpublisher/internal/feed"
	"podpublisher/internal/media"
	"podpublisher/internal/models"
	"podpublisher/internal/pipeline"
	"podpublisher/internal/scheduler"
	"podpublisher/internal/storage"
	"podpublisher/internal/store"
)

func newRunCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process due publication tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := scheduler.FirstMatch
			if all {
				mode = scheduler.AllMatch
			}
			return runInvocation(cmd, mode)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "process every due task instead of only the next one")

	return cmd
}

// runInvocation wires the collaborators for one invocation and hands off to
// the driver. Pipeline failures are reported per task inside the driver and
// do not surface here; a returned error means a store or configuration
// problem and a non-zero exit.
func runInvocation(cmd *cobra.Command, mode scheduler.Mode) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return err
	}

	var (
		st    storage.Store
		drive *storage.Drive
	)
	switch cfg.StorageBackend {
	case config.BackendDrive:
		drive, err = storage.NewDrive(cmd.Context(), cfg.DriveCredentialsPath, cfg.DriveTokenPath)
		if err != nil {
			return err
		}
		st = drive
	default:
		st = storage.NewLocal(cfg.LocalStoragePath, cfg.BaseURL+"/audio")
	}

	var downloader media.DriveDownloader
	if drive != nil {
		downloader = drive
	}

	episodes := store.NewEpisodeStore(cfg.EpisodesPath())
	render := func(eps []models.Episode, now time.Time) ([]byte, error) {
		return feed.Render(cfg.Channel, eps, now)
	}
	pipe := pipeline.New(
		media.NewResolver(downloader),
		&media.FFmpegExtractor{},
		st,
		episodes,
		render,
		cfg.WorkDir,
	)

	tasks := store.NewTaskStore(cfg.TasksPath())
	driver := scheduler.NewDriver(tasks, pipe, cmd.OutOrStdout())
	if err := driver.Run(cmd.Context(), mode); err != nil {
		return fmt.Errorf("invocation failed: %w", err)
	}
	return nil
}
