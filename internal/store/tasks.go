package store

import (
	"encoding/json"

	"podpublisher/internal/models"
)

// TaskStore is the durable task collection, one JSON array per file.
type TaskStore struct {
	path string
}

func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

// Load reads the full task collection. A missing file yields an empty
// collection; a malformed file yields a *StorageError.
func (s *TaskStore) Load() ([]models.Task, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}
	if data == nil {
		return nil, nil
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save overwrites the full task collection atomically.
func (s *TaskStore) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	return nil
}

// Append adds tasks to the end of the collection, preserving store order.
func (s *TaskStore) Append(tasks []models.Task) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(existing, tasks...))
}
