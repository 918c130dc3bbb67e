package store

import (
	"encoding/json"

	"podpublisher/internal/models"
)

// episodeFile is the on-disk shape of the episode collection. Alongside the
// episodes it carries the storage id of the published feed document, so the
// feed keeps one identity across invocations.
type episodeFile struct {
	FeedAssetID string           `json:"feed_asset_id,omitempty"`
	Episodes    []models.Episode `json:"episodes"`
}

// EpisodeStore is the durable, insertion-ordered episode collection.
type EpisodeStore struct {
	path string
}

func NewEpisodeStore(path string) *EpisodeStore {
	return &EpisodeStore{path: path}
}

func (s *EpisodeStore) read() (episodeFile, error) {
	var f episodeFile
	data, err := readFile(s.path)
	if err != nil {
		return f, &StorageError{Path: s.path, Err: err}
	}
	if data == nil {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, &StorageError{Path: s.path, Err: err}
	}
	return f, nil
}

func (s *EpisodeStore) write(f episodeFile) error {
	if f.Episodes == nil {
		f.Episodes = []models.Episode{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	return nil
}

// Load returns all episodes in insertion order.
func (s *EpisodeStore) Load() ([]models.Episode, error) {
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	return f.Episodes, nil
}

// Append adds one episode to the end of the collection and returns the full
// updated collection, ready to be rendered into the feed.
func (s *EpisodeStore) Append(ep models.Episode) ([]models.Episode, error) {
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	f.Episodes = append(f.Episodes, ep)
	if err := s.write(f); err != nil {
		return nil, err
	}
	return f.Episodes, nil
}

// FeedAssetID returns the remembered storage id of the feed document, or ""
// when the feed has never been uploaded.
func (s *EpisodeStore) FeedAssetID() (string, error) {
	f, err := s.read()
	if err != nil {
		return "", err
	}
	return f.FeedAssetID, nil
}

// SetFeedAssetID records the storage id of the uploaded feed document.
func (s *EpisodeStore) SetFeedAssetID(id string) error {
	f, err := s.read()
	if err != nil {
		return err
	}
	f.FeedAssetID = id
	return s.write(f)
}
