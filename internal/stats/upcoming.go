package stats

import (
	"sort"
	"time"

	"taskflow/internal/model"
)

// Urgency bands a due date relative to now.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencyWeek     Urgency = "within a week"
	UrgencyMonth    Urgency = "within a month"
	UrgencyFuture   Urgency = "future"
)

// UrgencyFor maps a days-remaining count to its band.
func UrgencyFor(daysRemaining int) Urgency {
	switch {
	case daysRemaining < 0:
		return UrgencyOverdue
	case daysRemaining == 0:
		return UrgencyToday
	case daysRemaining == 1:
		return UrgencyTomorrow
	case daysRemaining <= 7:
		return UrgencyWeek
	case daysRemaining <= 30:
		return UrgencyMonth
	}
	return UrgencyFuture
}

// DaysRemaining counts whole calendar days from now until due. Both
// timestamps are truncated to local midnight first, so a task due later
// today yields 0 and one due any time tomorrow yields 1.
func DaysRemaining(due, now time.Time) int {
	return int(midnight(due).Sub(midnight(now)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UpcomingTask is a task annotated with its countdown.
type UpcomingTask struct {
	model.Task
	DaysRemaining int
	Urgency       Urgency
}

// Upcoming returns the open tasks that have a due date, soonest first.
// Completed tasks are excluded even when their due date is in the future.
func Upcoming(tasks []model.Task, now time.Time) []UpcomingTask {
	out := make([]UpcomingTask, 0)
	for _, t := range tasks {
		if t.DueDate == nil || t.Status == model.StatusCompleted {
			continue
		}
		days := DaysRemaining(*t.DueDate, now)
		out = append(out, UpcomingTask{Task: t, DaysRemaining: days, Urgency: UrgencyFor(days)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	return out
}
