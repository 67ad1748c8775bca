package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	// Same calendar day counts as zero regardless of time of day.
	dueToday := time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysRemaining(dueToday, now))

	tomorrow := time.Date(2025, 6, 16, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysRemaining(tomorrow, now))

	yesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, -1, DaysRemaining(yesterday, now))
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyOverdue, UrgencyFor(-3))
	assert.Equal(t, UrgencyToday, UrgencyFor(0))
	assert.Equal(t, UrgencyTomorrow, UrgencyFor(1))
	assert.Equal(t, UrgencyWeek, UrgencyFor(7))
	assert.Equal(t, UrgencyMonth, UrgencyFor(8))
	assert.Equal(t, UrgencyMonth, UrgencyFor(30))
	assert.Equal(t, UrgencyFuture, UrgencyFor(31))
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	in2 := now.AddDate(0, 0, 2)
	in5 := now.AddDate(0, 0, 5)
	today := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: 1, Status: model.StatusPending, DueDate: &in5},
		{ID: 2, Status: model.StatusInProgress, DueDate: &in2},
		// Completed tasks are excluded even with a future due date.
		{ID: 3, Status: model.StatusCompleted, DueDate: &in2},
		// No due date, excluded.
		{ID: 4, Status: model.StatusPending},
		{ID: 5, Status: model.StatusPending, DueDate: &today},
	}

	up := Upcoming(tasks, now)
	assert.Len(t, up, 3)
	assert.Equal(t, uint(5), up[0].ID)
	assert.Equal(t, 0, up[0].DaysRemaining)
	assert.Equal(t, UrgencyToday, up[0].Urgency)
	assert.Equal(t, uint(2), up[1].ID)
	assert.Equal(t, uint(1), up[2].ID)
}

func TestUpcoming_Empty(t *testing.T) {
	assert.Empty(t, Upcoming(nil, time.Now()))
}
