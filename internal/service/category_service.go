package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/stats"
)

// defaultColors is the palette used when a category is created without an
// explicit color.
var defaultColors = []string{
	"#4CAF50", "#2196F3", "#FF9800", "#F44336", "#9C27B0",
	"#00BCD4", "#FFEB3B", "#795548", "#607D8B", "#E91E63",
}

// CategoryService wraps category business logic, including the derived
// rollup counts returned on list.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	taskRepo     *repository.TaskRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, taskRepo *repository.TaskRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, taskRepo: taskRepo}
}

// Create validates the name and color and stores the category. An empty
// color gets a random palette pick.
func (s *CategoryService) Create(ctx context.Context, owner *model.User, name, color string) (*model.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if color == "" {
		color = defaultColors[rand.Intn(len(defaultColors))]
	} else if !model.ValidColor(color) {
		return nil, fmt.Errorf("color must look like #RRGGBB, got %q", color)
	}

	category := model.Category{OwnerID: owner.ID, Name: name, Color: color}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns the owner's categories with task_count, completed_tasks and
// in_progress_tasks filled in from the task table.
func (s *CategoryService) List(ctx context.Context, owner *model.User) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByOwner(ctx, owner.ID, nil)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		rollup := stats.CategoryRollup(categories[i].ID, tasks)
		categories[i].TaskCount = rollup.TaskCount
		categories[i].CompletedTasks = rollup.CompletedTasks
		categories[i].InProgressTasks = rollup.InProgressTasks
	}
	return categories, nil
}

// Get returns one category without rollup counts.
func (s *CategoryService) Get(ctx context.Context, owner *model.User, id uint) (*model.Category, error) {
	return s.categoryRepo.FindByID(ctx, owner.ID, id)
}

// Update renames and/or recolors a category. Nil fields are left as-is.
func (s *CategoryService) Update(ctx context.Context, owner *model.User, id uint, name, color *string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, owner.ID, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if err := validateName(*name); err != nil {
			return nil, err
		}
		category.Name = *name
	}
	if color != nil && *color != "" {
		if !model.ValidColor(*color) {
			return nil, fmt.Errorf("color must look like #RRGGBB, got %q", *color)
		}
		category.Color = *color
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category and all tasks that belong to it.
func (s *CategoryService) Delete(ctx context.Context, owner *model.User, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, owner.ID, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, owner.ID, id)
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len([]rune(name)) > model.MaxCategoryNameLen {
		return fmt.Errorf("name exceeds %d characters", model.MaxCategoryNameLen)
	}
	return nil
}
