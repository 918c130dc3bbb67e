package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"podpublisher/internal/config"
	"podpublisher/internal/handlers"
	"podpublisher/internal/middleware"
	"podpublisher/internal/store"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated feed and locally published audio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			h := handlers.New(store.NewEpisodeStore(cfg.EpisodesPath()), cfg.Channel, cfg.LocalStoragePath)

			r := mux.NewRouter()
			r.HandleFunc("/feed.xml", h.GetFeed).Methods(http.MethodGet)
			r.HandleFunc("/audio/{filename}", h.ServeAudioFile).Methods(http.MethodGet)
			r.Use(middleware.NewRateLimiterMiddleware(rate.Limit(5), 10).Middleware)

			log.Printf("Starting server on :%s (commit: %s)", cfg.Port, CommitSHA)
			return http.ListenAndServe(":"+cfg.Port, r)
		},
	}
}
