// Package store holds the session's authoritative in-memory collections of
// categories and tasks. It is populated by fetches and mutated by commands;
// nothing here talks to the network, and nothing outlives the session.
package store

import (
	"sync"

	"taskflow/internal/model"
)

// Store keeps categories and tasks in the order entries arrived, looked up
// by ID. A mutex serializes access because command results land on response
// goroutines.
type Store struct {
	mu         sync.RWMutex
	categories []model.Category
	tasks      []model.Task
}

func New() *Store {
	return &Store{}
}

// ReplaceCategories swaps in a freshly fetched category list. No merge:
// last write wins.
func (s *Store) ReplaceCategories(categories []model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]model.Category(nil), categories...)
}

// ReplaceTasks swaps in a freshly fetched task list.
func (s *Store) ReplaceTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]model.Task(nil), tasks...)
}

// UpsertCategory inserts the category, or replaces the entry with the same
// ID in place.
func (s *Store) UpsertCategory(category model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = category
			return
		}
	}
	s.categories = append(s.categories, category)
}

// UpsertTask inserts the task, or replaces the entry with the same ID in
// place, preserving its position.
func (s *Store) UpsertTask(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
	s.tasks = append(s.tasks, task)
}

// RemoveTask deletes the task with the given ID, if present.
func (s *Store) RemoveTask(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// RemoveCategory deletes the category and every task that belongs to it,
// keeping the cascade invariant of category deletion.
func (s *Store) RemoveCategory(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.CategoryID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// SetTaskStatus updates one task's status field in place and reports
// whether the task exists.
func (s *Store) SetTaskStatus(id uint, status model.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return true
		}
	}
	return false
}

// Categories returns a snapshot copy of the category list.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.categories...)
}

// Tasks returns a snapshot copy of the task list.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

// TaskByID looks a task up by identity.
func (s *Store) TaskByID(id uint) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// CategoryByID looks a category up by identity.
func (s *Store) CategoryByID(id uint) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
