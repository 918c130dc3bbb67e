package feed

import (
	"time"

	"github.com/eduncan911/podcast"
	"podpublisher/internal/models"
)

// Channel holds the feed-level metadata, fixed for the lifetime of a run.
type Channel struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// Render builds the RSS document over the full episode collection. Entry
// order equals collection order, one enclosure per episode, entry id = audio
// URL. The output is deterministic for a fixed now; only the feed-level
// build timestamp varies between runs.
func Render(ch Channel, episodes []models.Episode, now time.Time) ([]byte, error) {
	p := podcast.New(ch.Title, ch.Link, ch.Description, &now, &now)
	if ch.Language != "" {
		p.Language = ch.Language
	}

	for _, ep := range episodes {
		description := ep.Description
		if description == "" {
			description = ep.Title
		}
		item := podcast.Item{
			Title:       ep.Title,
			Description: description,
		}
		pubDate := ep.PublishedAt
		item.AddPubDate(&pubDate)
		// AddEnclosure also sets the item GUID to the enclosure URL,
		// which is unique per uploaded asset.
		item.AddEnclosure(ep.AudioURL, podcast.MP3, ep.AudioSizeBytes)
		if _, err := p.AddItem(item); err != nil {
			return nil, err
		}
	}

	return p.Bytes(), nil
}
