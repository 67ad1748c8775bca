package service

import (
	"context"
	"fmt"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	CategoryID  uint
	DueDate     *time.Time
}

// TaskPatch carries a partial update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *model.Status
	Priority    *model.Priority
	CategoryID  *uint
	DueDate     *time.Time
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// Create stores a new task. Status defaults to Pending and priority to
// Medium; the category must exist and belong to the owner.
func (s *TaskService) Create(ctx context.Context, owner *model.User, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Status == "" {
		input.Status = model.StatusPending
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", input.Status)
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q", input.Priority)
	}
	if _, err := s.categoryRepo.FindByID(ctx, owner.ID, input.CategoryID); err != nil {
		return nil, fmt.Errorf("category %d: %w", input.CategoryID, err)
	}

	task := model.Task{
		OwnerID:     owner.ID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the owner's tasks, optionally filtered by category.
func (s *TaskService) List(ctx context.Context, owner *model.User, categoryID *uint) ([]model.Task, error) {
	return s.taskRepo.ListByOwner(ctx, owner.ID, categoryID)
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, owner *model.User, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, owner.ID, taskID)
}

// Update applies a partial edit to a task.
func (s *TaskService) Update(ctx context.Context, owner *model.User, taskID uint, patch TaskPatch) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, owner.ID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("title is required")
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("invalid status %q", *patch.Status)
		}
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, fmt.Errorf("invalid priority %q", *patch.Priority)
		}
		task.Priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, owner.ID, *patch.CategoryID); err != nil {
			return nil, fmt.Errorf("category %d: %w", *patch.CategoryID, err)
		}
		task.CategoryID = *patch.CategoryID
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetStatus moves a task to a new status. Any status may follow any other.
func (s *TaskService) SetStatus(ctx context.Context, owner *model.User, taskID uint, status model.Status) (*model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	task, err := s.taskRepo.FindByID(ctx, owner.ID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, owner *model.User, taskID uint) error {
	return s.taskRepo.Delete(ctx, owner.ID, taskID)
}
