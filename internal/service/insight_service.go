package service

import (
	"context"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/stats"
)

// InsightService computes the dashboard report: open High-priority tasks
// with their countdowns plus the weekly productivity summary.
type InsightService struct {
	taskRepo *repository.TaskRepository
}

func NewInsightService(taskRepo *repository.TaskRepository) *InsightService {
	return &InsightService{taskRepo: taskRepo}
}

// Report builds the insights payload for one user at the given instant.
func (s *InsightService) Report(ctx context.Context, owner *model.User, now time.Time) (*model.InsightsReport, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, owner.ID, nil)
	if err != nil {
		return nil, err
	}

	var high []model.HighPriorityTask
	for _, t := range tasks {
		if t.Priority != model.PriorityHigh || t.Status == model.StatusCompleted {
			continue
		}
		entry := model.HighPriorityTask{Task: t}
		if t.DueDate != nil {
			days := stats.DaysRemaining(*t.DueDate, now)
			entry.DaysRemaining = &days
		}
		high = append(high, entry)
	}
	if high == nil {
		high = []model.HighPriorityTask{}
	}

	weekly := stats.WeeklyTrend(tasks, now)
	return &model.InsightsReport{
		HighPriorityTasks: high,
		WeeklyInsights: model.WeeklyInsights{
			TasksCreatedThisWeek:   weekly.CreatedThisWeek,
			TasksCompletedThisWeek: weekly.CompletedThisWeek,
			ProductivityTrend:      weekly.TrendPercent,
			HighPriorityTasks:      len(high),
		},
	}, nil
}
