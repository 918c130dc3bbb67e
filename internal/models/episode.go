package models

import (
	"fmt"
	"net/url"
	"time"
)

// Episode is one published podcast entry. Episodes are created by the
// pipeline after a successful audio upload and are never mutated or removed
// here; the feed is rendered from the full collection in insertion order.
type Episode struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AudioURL       string    `json:"audio_url"`
	AudioSizeBytes int64     `json:"audio_size_bytes"`
	PublishedAt    time.Time `json:"published_at"`
	SourceRef      string    `json:"source_ref"`
}

// NewEpisode derives an episode from a completed upload. audioURL must be an
// absolute URL; a relative or empty locator would produce a feed entry that
// podcast clients cannot resolve.
func NewEpisode(task Task, audioURL string, sizeBytes int64, publishedAt time.Time) (Episode, error) {
	u, err := url.Parse(audioURL)
	if err != nil || !u.IsAbs() {
		return Episode{}, fmt.Errorf("episode audio URL %q is not an absolute URL", audioURL)
	}
	return Episode{
		Title:          task.Title,
		Description:    task.Description,
		AudioURL:       audioURL,
		AudioSizeBytes: sizeBytes,
		PublishedAt:    publishedAt,
		SourceRef:      task.SourceRef,
	}, nil
}
