package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

func TestReplaceLastWriteWins(t *testing.T) {
	s := New()
	s.ReplaceTasks([]model.Task{{ID: 1}, {ID: 2}})
	s.ReplaceTasks([]model.Task{{ID: 3}})

	tasks := s.Tasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, uint(3), tasks[0].ID)
}

func TestUpsertTask_PreservesPosition(t *testing.T) {
	s := New()
	s.ReplaceTasks([]model.Task{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
		{ID: 3, Title: "third"},
	})

	s.UpsertTask(model.Task{ID: 2, Title: "renamed"})

	tasks := s.Tasks()
	assert.Len(t, tasks, 3)
	assert.Equal(t, uint(2), tasks[1].ID)
	assert.Equal(t, "renamed", tasks[1].Title)

	s.UpsertTask(model.Task{ID: 4, Title: "fourth"})
	assert.Len(t, s.Tasks(), 4)
}

func TestRemoveTask(t *testing.T) {
	s := New()
	s.ReplaceTasks([]model.Task{{ID: 1}, {ID: 2}})

	s.RemoveTask(1)
	assert.Len(t, s.Tasks(), 1)

	// Removing an unknown id is a no-op.
	s.RemoveTask(99)
	assert.Len(t, s.Tasks(), 1)
}

func TestRemoveCategory_CascadesToTasks(t *testing.T) {
	s := New()
	s.ReplaceCategories([]model.Category{{ID: 10, Name: "Home"}, {ID: 20, Name: "Work"}})
	s.ReplaceTasks([]model.Task{
		{ID: 1, CategoryID: 10},
		{ID: 2, CategoryID: 20},
		{ID: 3, CategoryID: 10},
		{ID: 4, CategoryID: 10},
	})

	s.RemoveCategory(10)

	assert.Len(t, s.Categories(), 1)
	tasks := s.Tasks()
	assert.Len(t, tasks, 1)
	for _, task := range tasks {
		assert.NotEqual(t, uint(10), task.CategoryID)
	}
}

func TestSetTaskStatus(t *testing.T) {
	s := New()
	s.ReplaceTasks([]model.Task{{ID: 1, Status: model.StatusPending}})

	assert.True(t, s.SetTaskStatus(1, model.StatusCompleted))
	task, ok := s.TaskByID(1)
	assert.True(t, ok)
	assert.Equal(t, model.StatusCompleted, task.Status)

	assert.False(t, s.SetTaskStatus(99, model.StatusCompleted))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New()
	s.ReplaceTasks([]model.Task{{ID: 1, Title: "original"}})

	snapshot := s.Tasks()
	snapshot[0].Title = "mutated"

	task, _ := s.TaskByID(1)
	assert.Equal(t, "original", task.Title)
}
