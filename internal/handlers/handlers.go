// Package handlers serves the generated feed and locally published audio for
// deployments that use the local storage backend instead of Drive.
package handlers

import (
	"podpublisher/internal/feed"
	"podpublisher/internal/store"
)

type Handlers struct {
	episodes *store.EpisodeStore
	channel  feed.Channel
	audioDir string
}

func New(episodes *store.EpisodeStore, channel feed.Channel, audioDir string) *Handlers {
	return &Handlers{
		episodes: episodes,
		channel:  channel,
		audioDir: audioDir,
	}
}
