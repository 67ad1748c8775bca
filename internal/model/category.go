package model

import (
	"regexp"
	"time"
)

// MaxCategoryNameLen bounds category names.
const MaxCategoryNameLen = 50

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex color.
func ValidColor(s string) bool {
	return colorPattern.MatchString(s)
}

// Category groups tasks by area (work, health, study, etc.). The rollup
// fields are derived from the category's tasks when listing and are never
// persisted; CompletedTasks+InProgressTasks never exceeds TaskCount.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"index:idx_owner_category_name,unique" json:"-"`
	Name      string    `gorm:"index:idx_owner_category_name,unique" json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TaskCount       int `gorm:"-" json:"task_count"`
	CompletedTasks  int `gorm:"-" json:"completed_tasks"`
	InProgressTasks int `gorm:"-" json:"in_progress_tasks"`

	Tasks []Task `gorm:"foreignKey:CategoryID" json:"-"`
}
