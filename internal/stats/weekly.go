package stats

import (
	"math"
	"time"

	"taskflow/internal/model"
)

// WeeklyStats summarizes task activity over the trailing seven days.
type WeeklyStats struct {
	CreatedThisWeek   int
	CompletedThisWeek int
	PriorWeekCreated  int
	TrendPercent      int
}

// WeeklyTrend computes the weekly productivity summary. CreatedThisWeek and
// CompletedThisWeek cover [now-7d, now); PriorWeekCreated covers
// [now-14d, now-7d). A completion is a Completed task whose updated_at (or
// created_at when updated_at is zero) falls in the current window.
//
// TrendPercent compares completions this week against creations the week
// before. The mismatched metrics are the dashboard's long-standing
// definition; changing the baseline would silently shift every historical
// trend figure, so it stays.
func WeeklyTrend(tasks []model.Task, now time.Time) WeeklyStats {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var s WeeklyStats
	for _, t := range tasks {
		if inWindow(t.CreatedAt, weekAgo, now) {
			s.CreatedThisWeek++
		}
		if inWindow(t.CreatedAt, twoWeeksAgo, weekAgo) {
			s.PriorWeekCreated++
		}
		if t.Status != model.StatusCompleted {
			continue
		}
		completedAt := t.UpdatedAt
		if completedAt.IsZero() {
			completedAt = t.CreatedAt
		}
		if inWindow(completedAt, weekAgo, now) {
			s.CompletedThisWeek++
		}
	}

	switch {
	case s.PriorWeekCreated > 0:
		delta := float64(s.CompletedThisWeek-s.PriorWeekCreated) / float64(s.PriorWeekCreated)
		s.TrendPercent = int(math.Round(delta * 100))
	case s.CompletedThisWeek > 0:
		s.TrendPercent = 100
	}
	return s
}

func inWindow(t, from, until time.Time) bool {
	return !t.Before(from) && t.Before(until)
}
