package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// Task represents one scheduled publication job. Tasks are append-only:
// the pipeline flips Status to processed and may record AudioAssetID, but
// tasks are never deleted from the store.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceRef   string    `json:"source_ref"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// AudioAssetID is the storage id of the uploaded audio asset, recorded
	// after the first successful upload so a retry updates the same asset
	// instead of creating a duplicate.
	AudioAssetID string `json:"audio_asset_id,omitempty"`
}

// NewTask creates a pending task. ScheduledAt is fixed at creation and never
// changes afterwards.
func NewTask(title, description, sourceRef string, scheduledAt time.Time) (Task, error) {
	if title == "" {
		return Task{}, fmt.Errorf("task title is required")
	}
	if sourceRef == "" {
		return Task{}, fmt.Errorf("task source reference is required")
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		SourceRef:   sourceRef,
		ScheduledAt: scheduledAt,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Due reports whether the task is eligible for processing at now.
func (t *Task) Due(now time.Time) bool {
	return t.Status == StatusPending && !t.ScheduledAt.After(now)
}
