package feed

import (
	"strings"
	"testing"
	"time"

	"podpublisher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChannel = Channel{
	Title:       "Test Podcast",
	Link:        "http://example.com/feed.xml",
	Description: "A test feed.",
	Language:    "en",
}

func testEpisodes() []models.Episode {
	published := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	return []models.Episode{
		{
			Title:          "Morning Class",
			Description:    "First session.",
			AudioURL:       "http://example.com/audio/ep1.mp3",
			AudioSizeBytes: 1024,
			PublishedAt:    published,
		},
		{
			Title:          "Evening Class",
			Description:    "Second session.",
			AudioURL:       "http://example.com/audio/ep2.mp3",
			AudioSizeBytes: 2048,
			PublishedAt:    published.Add(48 * time.Hour),
		},
	}
}

func TestRenderContainsEpisodes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc, err := Render(testChannel, testEpisodes(), now)
	require.NoError(t, err)

	rss := string(doc)
	assert.Contains(t, rss, "<title>Test Podcast</title>")
	assert.Contains(t, rss, "<language>en</language>")
	assert.Contains(t, rss, "<title>Morning Class</title>")
	assert.Contains(t, rss, "<title>Evening Class</title>")
	assert.Contains(t, rss, `url="http://example.com/audio/ep1.mp3"`)
	assert.Contains(t, rss, `type="audio/mpeg"`)
	// Entry id is the audio locator.
	assert.Contains(t, rss, "<guid>http://example.com/audio/ep1.mp3</guid>")
}

func TestRenderPreservesInsertionOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc, err := Render(testChannel, testEpisodes(), now)
	require.NoError(t, err)

	rss := string(doc)
	first := strings.Index(rss, "Morning Class")
	second := strings.Index(rss, "Evening Class")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRenderDeterministicForFixedTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	episodes := testEpisodes()

	a, err := Render(testChannel, episodes, now)
	require.NoError(t, err)
	b, err := Render(testChannel, episodes, now)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRenderEmptyCollection(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc, err := Render(testChannel, nil, now)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>Test Podcast</title>")
	assert.NotContains(t, string(doc), "<item>")
}
