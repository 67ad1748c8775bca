// Package stats computes derived views over task and category snapshots.
// Every function is pure: same input, same output, no hidden state, and
// empty input yields zeroed results rather than an error.
package stats

import (
	"math"
	"sort"

	"taskflow/internal/model"
)

// PriorityAll is the filter value that matches every task.
const PriorityAll = "All"

// StatusCounts holds per-status tallies. Total counts every task, including
// ones whose status is not a known value; such tasks land in no bucket.
type StatusCounts struct {
	Pending    int
	InProgress int
	Completed  int
	Total      int
}

// CountByStatus tallies tasks by status in a single pass.
func CountByStatus(tasks []model.Task) StatusCounts {
	c := StatusCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending:
			c.Pending++
		case model.StatusInProgress:
			c.InProgress++
		case model.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// CompletionRate returns the percentage of tasks completed, rounded to the
// nearest integer. An empty task list rates 0.
func CompletionRate(tasks []model.Task) int {
	c := CountByStatus(tasks)
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Completed) / float64(c.Total) * 100))
}

// Rollup holds the per-category aggregate counts.
type Rollup struct {
	TaskCount       int
	CompletedTasks  int
	InProgressTasks int
}

// CategoryRollup derives the aggregate counts for one category from a task
// snapshot.
func CategoryRollup(categoryID uint, tasks []model.Task) Rollup {
	var r Rollup
	for _, t := range tasks {
		if t.CategoryID != categoryID {
			continue
		}
		r.TaskCount++
		switch t.Status {
		case model.StatusCompleted:
			r.CompletedTasks++
		case model.StatusInProgress:
			r.InProgressTasks++
		}
	}
	return r
}

// FilterByPriority returns the tasks matching filter, or all tasks when the
// filter is PriorityAll.
func FilterByPriority(tasks []model.Task, filter string) []model.Task {
	if filter == PriorityAll {
		out := make([]model.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if string(t.Priority) == filter {
			out = append(out, t)
		}
	}
	return out
}

// SortByPriority returns a copy of tasks ordered High before Medium before
// Low. The sort is stable: ties keep their original relative order.
func SortByPriority(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}
