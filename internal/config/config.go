// Package config loads the process configuration from the environment,
// once, at startup. Collaborators receive their settings from here; nothing
// re-reads the environment mid-run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"podpublisher/internal/feed"
)

// Error reports missing or unusable required configuration. Fatal: the
// invocation aborts before any task is touched.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

const (
	BackendLocal = "local"
	BackendDrive = "drive"
)

type Config struct {
	DataDir string
	WorkDir string

	StorageBackend       string
	LocalStoragePath     string
	BaseURL              string
	DriveCredentialsPath string
	DriveTokenPath       string

	Channel feed.Channel

	Port string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment and validates that the
// selected storage backend has what it needs.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:              getenv("PODPUB_DATA_DIR", "data"),
		WorkDir:              getenv("PODPUB_WORK_DIR", os.TempDir()),
		StorageBackend:       getenv("STORAGE_BACKEND", BackendLocal),
		BaseURL:              getenv("BASE_URL", "http://localhost:8080"),
		DriveCredentialsPath: os.Getenv("DRIVE_CREDENTIALS_JSON"),
		DriveTokenPath:       os.Getenv("DRIVE_TOKEN_JSON"),
		Port:                 getenv("PORT", "8080"),
	}
	cfg.LocalStoragePath = getenv("LOCAL_STORAGE_PATH", filepath.Join(cfg.DataDir, "public"))
	cfg.Channel = feed.Channel{
		Title:       getenv("PODCAST_TITLE", "Automated Podcast"),
		Link:        getenv("PODCAST_LINK", cfg.BaseURL+"/feed.xml"),
		Description: getenv("PODCAST_DESCRIPTION", "A podcast published automatically from scheduled videos."),
		Language:    getenv("PODCAST_LANGUAGE", "en"),
	}

	switch cfg.StorageBackend {
	case BackendLocal:
	case BackendDrive:
		if cfg.DriveCredentialsPath == "" {
			return nil, &Error{Reason: "DRIVE_CREDENTIALS_JSON is not set"}
		}
		if cfg.DriveTokenPath == "" {
			return nil, &Error{Reason: "DRIVE_TOKEN_JSON is not set"}
		}
		if _, err := os.Stat(cfg.DriveCredentialsPath); err != nil {
			return nil, &Error{Reason: fmt.Sprintf("drive credentials file: %v", err)}
		}
		if _, err := os.Stat(cfg.DriveTokenPath); err != nil {
			return nil, &Error{Reason: fmt.Sprintf("drive token file: %v", err)}
		}
	default:
		return nil, &Error{Reason: fmt.Sprintf("unknown storage backend %q", cfg.StorageBackend)}
	}

	return cfg, nil
}

// TasksPath is the task collection file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.DataDir, "tasks.json")
}

// EpisodesPath is the episode collection file.
func (c *Config) EpisodesPath() string {
	return filepath.Join(c.DataDir, "episodes.json")
}
