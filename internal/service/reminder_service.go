package service

import (
	"context"
	"log/slog"
	"time"

	"taskflow/internal/repository"
	"taskflow/internal/stats"
)

// ReminderService scans for tasks coming due and reports them through the
// structured log. Delivery beyond the log (push, email) is intentionally
// out of scope here.
type ReminderService struct {
	taskRepo *repository.TaskRepository
	logger   *slog.Logger
}

func NewReminderService(taskRepo *repository.TaskRepository, logger *slog.Logger) *ReminderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderService{taskRepo: taskRepo, logger: logger}
}

// ScanDueSoon logs every open task due within the next 24 hours, including
// overdue ones, grouped per owner.
func (s *ReminderService) ScanDueSoon(ctx context.Context, now time.Time) error {
	horizon := now.Add(24 * time.Hour)
	tasks, err := s.taskRepo.ListDueBetween(ctx, now.AddDate(0, 0, -30), horizon)
	if err != nil {
		return err
	}

	perOwner := make(map[uint]int)
	for _, t := range tasks {
		perOwner[t.OwnerID]++
		days := stats.DaysRemaining(*t.DueDate, now)
		s.logger.Info("task due soon",
			slog.Uint64("owner_id", uint64(t.OwnerID)),
			slog.Uint64("task_id", uint64(t.ID)),
			slog.String("title", t.Title),
			slog.String("urgency", string(stats.UrgencyFor(days))),
			slog.Int("days_remaining", days),
		)
	}
	for owner, n := range perOwner {
		s.logger.Info("reminder summary", slog.Uint64("owner_id", uint64(owner)), slog.Int("due_soon", n))
	}
	return nil
}
