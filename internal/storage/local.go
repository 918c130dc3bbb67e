package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local publishes artifacts into a directory served by the serve command (or
// any static file host). The asset id is the file name, so updates are
// overwrites and publishing is naturally idempotent.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Publish(ctx context.Context, r io.Reader, name, existingID string) (string, string, error) {
	if existingID != "" {
		name = existingID
	}
	name = filepath.Base(name)
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", "", &PublishError{Name: name, Err: err}
	}
	target := filepath.Join(l.dir, name)
	tmp, err := os.CreateTemp(l.dir, name+".*")
	if err != nil {
		return "", "", &PublishError{Name: name, Err: err}
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", "", &PublishError{Name: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", "", &PublishError{Name: name, Err: err}
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", "", &PublishError{Name: name, Err: err}
	}
	return fmt.Sprintf("%s/%s", l.baseURL, name), name, nil
}

// MakePublic is a no-op: everything under the directory is public.
func (l *Local) MakePublic(ctx context.Context, id string) error {
	return nil
}
