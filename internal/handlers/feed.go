package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"podpublisher/internal/feed"
)

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.episodes.Load()
	if err != nil {
		log.Printf("Error loading episodes: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	rss, err := feed.Render(h.channel, episodes, time.Now().UTC())
	if err != nil {
		log.Printf("Error rendering feed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	w.Write(rss)
}

func (h *Handlers) ServeAudioFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	filename := filepath.Base(vars["filename"])

	http.ServeFile(w, r, filepath.Join(h.audioDir, filename))
}
