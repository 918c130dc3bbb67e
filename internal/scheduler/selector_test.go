package scheduler

import (
	"testing"
	"time"

	"podpublisher/internal/models"

	"github.com/stretchr/testify/assert"
)

func taskAt(id string, scheduled time.Time, status string) models.Task {
	return models.Task{
		ID:          id,
		Title:       id,
		SourceRef:   id + ".mp4",
		ScheduledAt: scheduled,
		Status:      status,
		CreatedAt:   scheduled,
	}
}

func TestNextDueSelectsOnlyPendingAndDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskAt("processed-early", now.Add(-2*time.Hour), models.StatusProcessed),
		taskAt("future", now.Add(time.Hour), models.StatusPending),
		taskAt("due", now.Add(-time.Hour), models.StatusPending),
	}

	assert.Equal(t, 2, NextDue(tasks, now))
}

func TestNextDueNoneEligible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskAt("future", now.Add(time.Minute), models.StatusPending),
		taskAt("done", now.Add(-time.Minute), models.StatusProcessed),
	}

	assert.Equal(t, -1, NextDue(tasks, now))
	assert.Empty(t, AllDue(tasks, now))
}

func TestNextDuePrefersEarliestScheduledTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskAt("later", now.Add(-time.Hour), models.StatusPending),
		taskAt("earlier", now.Add(-2*time.Hour), models.StatusPending),
	}

	assert.Equal(t, 1, NextDue(tasks, now))
}

func TestNextDueTieBreaksOnStoreOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scheduled := now.Add(-time.Hour)
	tasks := []models.Task{
		taskAt("first-in-store", scheduled, models.StatusPending),
		taskAt("second-in-store", scheduled, models.StatusPending),
	}

	assert.Equal(t, 0, NextDue(tasks, now))
}

func TestAllDueOrderedByScheduleThenStore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskAt("b", now.Add(-time.Hour), models.StatusPending),
		taskAt("a", now.Add(-3*time.Hour), models.StatusPending),
		taskAt("c", now.Add(-time.Hour), models.StatusPending),
		taskAt("future", now.Add(time.Hour), models.StatusPending),
	}

	assert.Equal(t, []int{1, 0, 2}, AllDue(tasks, now))
}
