package model

import (
	"regexp"
	"time"
)

// Status is the workflow state of a task. Any status may move to any
// other status directly; there is no forbidden transition.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the board columns in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority orders tasks for display: High sorts before Medium before Low.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the sort position of p. Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Task is a unit of work belonging to exactly one category.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OwnerID     uint       `gorm:"index" json:"-"`
	CategoryID  uint       `gorm:"index" json:"category_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `gorm:"default:Pending" json:"status"`
	Priority    Priority   `gorm:"default:Medium" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// ExtractURLs returns the http(s) URLs embedded in a task description,
// in order of appearance. URLs are recognized, not validated: anything
// that looks like a link is returned so the caller can render it as one.
func ExtractURLs(description string) []string {
	return urlPattern.FindAllString(description, -1)
}
