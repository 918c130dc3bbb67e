package scheduler

import (
	"context"
	"fmt"
	"io"
	"time"

	"podpublisher/internal/models"
	"podpublisher/internal/store"
)

// Mode selects how many due tasks one invocation processes.
type Mode int

const (
	// FirstMatch processes at most the single next due task. Intended for
	// cron-style triggers: one task per trigger, so overlapping schedules
	// cannot double-process.
	FirstMatch Mode = iota
	// AllMatch processes every due task, saving the store after each one.
	AllMatch
)

// Pipeline runs the full stage sequence for one task, mutating it in place
// (status, remembered asset id) on progress.
type Pipeline interface {
	Run(ctx context.Context, task *models.Task) error
}

// Driver orchestrates one invocation: load the store, select due tasks, run
// the pipeline per task, persist after every attempt. A task's pipeline
// failure is reported and skipped; only store errors abort the invocation.
type Driver struct {
	tasks    *store.TaskStore
	pipeline Pipeline
	out      io.Writer
	now      func() time.Time
}

func NewDriver(tasks *store.TaskStore, pipeline Pipeline, out io.Writer) *Driver {
	return &Driver{
		tasks:    tasks,
		pipeline: pipeline,
		out:      out,
		now:      time.Now,
	}
}

func (d *Driver) Run(ctx context.Context, mode Mode) error {
	all, err := d.tasks.Load()
	if err != nil {
		return err
	}

	now := d.now()
	var selected []int
	switch mode {
	case AllMatch:
		selected = AllDue(all, now)
	default:
		if i := NextDue(all, now); i >= 0 {
			selected = []int{i}
		}
	}

	if len(selected) == 0 {
		fmt.Fprintln(d.out, "no eligible task")
		return nil
	}

	processed := 0
	for _, i := range selected {
		task := &all[i]
		runErr := d.pipeline.Run(ctx, task)
		if runErr != nil {
			fmt.Fprintf(d.out, "task %s failed: %v\n", task.ID, runErr)
		} else {
			fmt.Fprintf(d.out, "processed task %s\n", task.ID)
			processed++
		}
		// Save after every attempt: a success durably marks the task
		// processed before the next one starts, and a failure still
		// persists any asset id the pipeline learned.
		if err := d.tasks.Save(all); err != nil {
			return err
		}
	}

	pending := 0
	for i := range all {
		if all[i].Status == models.StatusPending {
			pending++
		}
	}
	fmt.Fprintf(d.out, "%d processed, %d pending\n", processed, pending)
	return nil
}
