// Package pipeline runs the ordered publication stages for a single task:
// acquire the source, extract audio, upload the audio asset, append the
// episode and re-render the feed, upload the feed, mark the task processed.
//
// Stages run strictly in order and a failure aborts the rest with no
// rollback: an already-uploaded asset or appended episode is kept as durable
// partial progress, safe because uploads are update-in-place and the episode
// append only happens after its audio asset exists.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"podpublisher/internal/models"
	"podpublisher/internal/storage"
	"podpublisher/internal/store"
)

const feedObjectName = "feed.xml"

// Acquirer resolves a task's source reference to a byte stream.
type Acquirer interface {
	Acquire(ctx context.Context, ref string) (io.ReadCloser, error)
}

// Extractor produces a standalone audio file from a video file.
type Extractor interface {
	Extract(ctx context.Context, videoPath string) (string, error)
}

// RenderFunc renders the feed document over the full episode collection.
type RenderFunc func(episodes []models.Episode, now time.Time) ([]byte, error)

type Pipeline struct {
	source   Acquirer
	extract  Extractor
	storage  storage.Store
	episodes *store.EpisodeStore
	render   RenderFunc
	workDir  string
	now      func() time.Time
}

func New(source Acquirer, extract Extractor, st storage.Store, episodes *store.EpisodeStore, render RenderFunc, workDir string) *Pipeline {
	return &Pipeline{
		source:   source,
		extract:  extract,
		storage:  st,
		episodes: episodes,
		render:   render,
		workDir:  workDir,
		now:      time.Now,
	}
}

// Run executes all stages for one task. On full success the task is marked
// processed in memory; persisting that is the caller's job. On failure the
// task keeps status pending, though a learned audio asset id is recorded on
// it so a retry updates the same asset.
func (p *Pipeline) Run(ctx context.Context, task *models.Task) error {
	log.Printf("Processing task %s (%q)", task.ID, task.Title)

	// Acquiring
	videoPath, err := p.acquireToFile(ctx, task.SourceRef)
	if err != nil {
		return err
	}
	defer os.Remove(videoPath)

	// ExtractingAudio
	audioPath, err := p.extract.Extract(ctx, videoPath)
	if err != nil {
		return err
	}
	defer os.Remove(audioPath)

	// UploadingAudio
	audioURL, audioSize, err := p.uploadAudio(ctx, task, audioPath)
	if err != nil {
		return err
	}

	// UpdatingFeed
	episode, err := models.NewEpisode(*task, audioURL, audioSize, p.now().UTC())
	if err != nil {
		return err
	}
	episodes, err := p.episodes.Append(episode)
	if err != nil {
		return err
	}
	doc, err := p.render(episodes, p.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to render feed: %w", err)
	}

	// UploadingFeed
	if err := p.uploadFeed(ctx, doc); err != nil {
		return err
	}

	// Completed
	task.Status = models.StatusProcessed
	log.Printf("Successfully processed task %s", task.ID)
	return nil
}

// acquireToFile spools the source stream into the work directory so the
// codec stage can seek over it.
func (p *Pipeline) acquireToFile(ctx context.Context, ref string) (string, error) {
	src, err := p.source.Acquire(ctx, ref)
	if err != nil {
		return "", err
	}
	defer src.Close()

	f, err := os.CreateTemp(p.workDir, "source-*.mp4")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to spool source %s: %w", ref, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to spool source %s: %w", ref, err)
	}
	return f.Name(), nil
}

// uploadAudio publishes the audio artifact under a name derived from the
// stable task id, passing any remembered asset id so a retry updates in
// place. The returned id is recorded on the task before errors are checked
// elsewhere, so it survives later-stage failures.
func (p *Pipeline) uploadAudio(ctx context.Context, task *models.Task, audioPath string) (string, int64, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open audio artifact: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat audio artifact: %w", err)
	}

	createdNew := task.AudioAssetID == ""
	url, id, err := p.storage.Publish(ctx, f, task.ID+".mp3", task.AudioAssetID)
	if err != nil {
		return "", 0, err
	}
	task.AudioAssetID = id

	if createdNew {
		if err := p.storage.MakePublic(ctx, id); err != nil {
			return "", 0, err
		}
	}
	return url, info.Size(), nil
}

// uploadFeed overwrites the feed document at its stable identity: the
// remembered asset id when one exists, the fixed object name otherwise.
func (p *Pipeline) uploadFeed(ctx context.Context, doc []byte) error {
	feedID, err := p.episodes.FeedAssetID()
	if err != nil {
		return err
	}

	_, id, err := p.storage.Publish(ctx, bytes.NewReader(doc), feedObjectName, feedID)
	if err != nil {
		return err
	}
	if feedID == "" {
		if err := p.storage.MakePublic(ctx, id); err != nil {
			return err
		}
	}
	if id != feedID {
		if err := p.episodes.SetFeedAssetID(id); err != nil {
			return err
		}
	}
	return nil
}
