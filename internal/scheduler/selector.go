// Package scheduler selects due publication tasks and drives one invocation
// of the pipeline over them.
package scheduler

import (
	"sort"
	"time"

	"podpublisher/internal/models"
)

// NextDue returns the index of the single next eligible task: pending,
// scheduled at or before now, earliest ScheduledAt first, store order
// breaking ties. Returns -1 when no task is eligible.
func NextDue(tasks []models.Task, now time.Time) int {
	best := -1
	for i := range tasks {
		if !tasks[i].Due(now) {
			continue
		}
		if best == -1 || tasks[i].ScheduledAt.Before(tasks[best].ScheduledAt) {
			best = i
		}
	}
	return best
}

// AllDue returns the indices of every eligible task, ordered by ScheduledAt
// with store order breaking ties.
func AllDue(tasks []models.Task, now time.Time) []int {
	var due []int
	for i := range tasks {
		if tasks[i].Due(now) {
			due = append(due, i)
		}
	}
	sort.SliceStable(due, func(a, b int) bool {
		return tasks[due[a]].ScheduledAt.Before(tasks[due[b]].ScheduledAt)
	})
	return due
}
