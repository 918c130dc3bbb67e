package scheduler

import (
	"time"

	"podpublisher/internal/models"
)

// BatchItem describes one video to enqueue for publication.
type BatchItem struct {
	Title       string
	Description string
	SourceRef   string
}

// NewBatch creates pending tasks for the given items with staggered schedule
// times: the first at start, each following one interval later.
func NewBatch(items []BatchItem, start time.Time, interval time.Duration) ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(items))
	for i, item := range items {
		task, err := models.NewTask(item.Title, item.Description, item.SourceRef, start.Add(time.Duration(i)*interval))
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
