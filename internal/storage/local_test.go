package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPublishCreate(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "http://localhost:8080/audio/")

	url, id, err := l.Publish(context.Background(), strings.NewReader("audio bytes"), "ep1.mp3", "")
	require.NoError(t, err)

	assert.Equal(t, "ep1.mp3", id)
	assert.Equal(t, "http://localhost:8080/audio/ep1.mp3", url)

	data, err := os.ReadFile(filepath.Join(dir, "ep1.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))
}

func TestLocalPublishUpdateInPlace(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "http://localhost:8080/audio")

	_, id, err := l.Publish(context.Background(), strings.NewReader("v1"), "ep1.mp3", "")
	require.NoError(t, err)

	url, id2, err := l.Publish(context.Background(), strings.NewReader("v2"), "ep1.mp3", id)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
	assert.Equal(t, "http://localhost:8080/audio/ep1.mp3", url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "ep1.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalMakePublicNoOp(t *testing.T) {
	l := NewLocal(t.TempDir(), "http://localhost:8080/audio")
	assert.NoError(t, l.MakePublic(context.Background(), "ep1.mp3"))
}
