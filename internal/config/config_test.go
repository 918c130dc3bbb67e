package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("PODPUB_DATA_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, cfg.StorageBackend)
	assert.Equal(t, filepath.Join("data", "tasks.json"), cfg.TasksPath())
	assert.Equal(t, filepath.Join("data", "episodes.json"), cfg.EpisodesPath())
	assert.Equal(t, "Automated Podcast", cfg.Channel.Title)
}

func TestLoadDriveRequiresCredentials(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "drive")
	t.Setenv("DRIVE_CREDENTIALS_JSON", "")
	t.Setenv("DRIVE_TOKEN_JSON", "")

	_, err := Load()
	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadDriveRequiresReadableFiles(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "client_secret.json")
	require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o644))

	t.Setenv("STORAGE_BACKEND", "drive")
	t.Setenv("DRIVE_CREDENTIALS_JSON", creds)
	t.Setenv("DRIVE_TOKEN_JSON", filepath.Join(dir, "missing_token.json"))

	_, err := Load()
	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadDriveValid(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "client_secret.json")
	token := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(token, []byte("{}"), 0o644))

	t.Setenv("STORAGE_BACKEND", "drive")
	t.Setenv("DRIVE_CREDENTIALS_JSON", creds)
	t.Setenv("DRIVE_TOKEN_JSON", token)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendDrive, cfg.StorageBackend)
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "ftp")

	_, err := Load()
	var cfgErr *Error
	assert.ErrorAs(t, err, &cfgErr)
}
