package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

func task(id uint, status model.Status, priority model.Priority) model.Task {
	return model.Task{ID: id, Status: status, Priority: priority}
}

func TestCountByStatus(t *testing.T) {
	tasks := []model.Task{
		task(1, model.StatusPending, model.PriorityLow),
		task(2, model.StatusInProgress, model.PriorityLow),
		task(3, model.StatusCompleted, model.PriorityLow),
		task(4, model.StatusCompleted, model.PriorityLow),
	}

	c := CountByStatus(tasks)
	assert.Equal(t, 1, c.Pending)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 2, c.Completed)
	assert.Equal(t, 4, c.Total)
}

func TestCountByStatus_MalformedStatusStaysInTotal(t *testing.T) {
	tasks := []model.Task{
		task(1, model.StatusPending, model.PriorityLow),
		task(2, model.Status("Archived"), model.PriorityLow),
		task(3, "", model.PriorityLow),
	}

	c := CountByStatus(tasks)
	assert.Equal(t, 1, c.Pending)
	assert.Equal(t, 0, c.InProgress)
	assert.Equal(t, 0, c.Completed)
	// Unknown statuses land in no bucket but are not dropped from Total.
	assert.Equal(t, 3, c.Total)
}

func TestCountByStatus_Empty(t *testing.T) {
	assert.Equal(t, StatusCounts{}, CountByStatus(nil))
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))
	assert.Equal(t, 0, CompletionRate([]model.Task{}))

	tasks := []model.Task{
		task(1, model.StatusCompleted, model.PriorityLow),
		task(2, model.StatusPending, model.PriorityLow),
		task(3, model.StatusPending, model.PriorityLow),
	}
	assert.Equal(t, 33, CompletionRate(tasks))

	// Rate never decreases as tasks complete with total held fixed.
	prev := CompletionRate(tasks)
	for i := range tasks {
		tasks[i].Status = model.StatusCompleted
		rate := CompletionRate(tasks)
		assert.GreaterOrEqual(t, rate, prev)
		prev = rate
	}
	assert.Equal(t, 100, prev)
}

func TestCategoryRollup(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, CategoryID: 7, Status: model.StatusCompleted},
		{ID: 2, CategoryID: 7, Status: model.StatusInProgress},
		{ID: 3, CategoryID: 7, Status: model.StatusPending},
		{ID: 4, CategoryID: 9, Status: model.StatusCompleted},
	}

	r := CategoryRollup(7, tasks)
	assert.Equal(t, 3, r.TaskCount)
	assert.Equal(t, 1, r.CompletedTasks)
	assert.Equal(t, 1, r.InProgressTasks)
	assert.LessOrEqual(t, r.CompletedTasks+r.InProgressTasks, r.TaskCount)

	assert.Equal(t, Rollup{}, CategoryRollup(42, tasks))
}

func TestFilterByPriority(t *testing.T) {
	tasks := []model.Task{
		task(1, model.StatusPending, model.PriorityHigh),
		task(2, model.StatusPending, model.PriorityLow),
		task(3, model.StatusPending, model.PriorityHigh),
	}

	assert.Len(t, FilterByPriority(tasks, PriorityAll), 3)

	high := FilterByPriority(tasks, "High")
	assert.Len(t, high, 2)
	assert.Equal(t, uint(1), high[0].ID)
	assert.Equal(t, uint(3), high[1].ID)

	assert.Empty(t, FilterByPriority(tasks, "Medium"))
}

func TestSortByPriority_Stable(t *testing.T) {
	tasks := []model.Task{
		task(1, model.StatusPending, model.PriorityHigh),
		task(2, model.StatusPending, model.PriorityMedium),
		task(3, model.StatusPending, model.PriorityHigh),
	}

	sorted := SortByPriority(tasks)
	ids := []uint{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []uint{1, 3, 2}, ids)

	// Input order untouched.
	assert.Equal(t, uint(2), tasks[1].ID)
}

func TestSortByPriority_UnknownSortsLast(t *testing.T) {
	tasks := []model.Task{
		task(1, model.StatusPending, model.Priority("Urgent")),
		task(2, model.StatusPending, model.PriorityLow),
	}
	sorted := SortByPriority(tasks)
	assert.Equal(t, uint(2), sorted[0].ID)
	assert.Equal(t, uint(1), sorted[1].ID)
}

func TestWeeklyTrend(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tasks := []model.Task{
		// Created and completed this week.
		{ID: 1, Status: model.StatusCompleted, CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-1 * day)},
		// Created this week, still open.
		{ID: 2, Status: model.StatusPending, CreatedAt: now.Add(-3 * day)},
		// Created the prior week.
		{ID: 3, Status: model.StatusPending, CreatedAt: now.Add(-10 * day)},
		{ID: 4, Status: model.StatusPending, CreatedAt: now.Add(-13 * day)},
		// Too old for either window.
		{ID: 5, Status: model.StatusCompleted, CreatedAt: now.Add(-20 * day), UpdatedAt: now.Add(-20 * day)},
	}

	s := WeeklyTrend(tasks, now)
	assert.Equal(t, 2, s.CreatedThisWeek)
	assert.Equal(t, 1, s.CompletedThisWeek)
	assert.Equal(t, 2, s.PriorWeekCreated)
	// (1 - 2) / 2 * 100 = -50
	assert.Equal(t, -50, s.TrendPercent)
}

func TestWeeklyTrend_EmptyBaseline(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, WeeklyStats{}, WeeklyTrend(nil, now))

	completed := []model.Task{
		{ID: 1, Status: model.StatusCompleted, CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now.Add(-time.Hour)},
	}
	s := WeeklyTrend(completed, now)
	assert.Equal(t, 100, s.TrendPercent)
}

func TestWeeklyTrend_CompletedAtFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: 1, Status: model.StatusCompleted, CreatedAt: now.Add(-24 * time.Hour)},
	}
	s := WeeklyTrend(tasks, now)
	assert.Equal(t, 1, s.CompletedThisWeek)
}
