package model

// WeeklyInsights summarizes activity over the trailing week. TrendPercent
// compares this week's completions against the number of tasks created the
// week before, matching the dashboard's historical definition.
type WeeklyInsights struct {
	TasksCreatedThisWeek   int `json:"tasks_created_this_week"`
	TasksCompletedThisWeek int `json:"tasks_completed_this_week"`
	ProductivityTrend      int `json:"productivity_trend"`
	HighPriorityTasks      int `json:"high_priority_tasks"`
}

// HighPriorityTask is an open High-priority task annotated with days
// remaining until its due date. DaysRemaining is nil when no due date is set.
type HighPriorityTask struct {
	Task
	DaysRemaining *int `json:"days_remaining"`
}

// InsightsReport is the payload of GET /api/insights.
type InsightsReport struct {
	HighPriorityTasks []HighPriorityTask `json:"high_priority_tasks"`
	WeeklyInsights    WeeklyInsights     `json:"weekly_insights"`
}
