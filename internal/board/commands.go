package board

import (
	"context"
	"errors"
	"fmt"

	"taskflow/internal/api"
	"taskflow/internal/model"
	"taskflow/internal/store"
)

// Remote is the slice of the API client the command layer needs.
type Remote interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req api.CategoryCreate) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, patch api.CategoryPatch) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	ListTasks(ctx context.Context, categoryID *uint) ([]model.Task, error)
	CreateTask(ctx context.Context, req api.TaskCreate) (*model.Task, error)
	UpdateTask(ctx context.Context, id uint, patch api.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

// Commands validates mutations locally, performs the remote write, and on
// success applies the matching store mutation. Failures always surface to
// the caller; a 401 additionally fires the unauthorized hook so the session
// can be torn down.
type Commands struct {
	remote         Remote
	store          *store.Store
	onUnauthorized func()
}

// NewCommands wires the command layer. onUnauthorized may be nil.
func NewCommands(remote Remote, s *store.Store, onUnauthorized func()) *Commands {
	return &Commands{remote: remote, store: s, onUnauthorized: onUnauthorized}
}

// LoadCategories fetches all categories and replaces the store's collection.
func (c *Commands) LoadCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := c.remote.ListCategories(ctx)
	if err != nil {
		return nil, c.observe(err)
	}
	c.store.ReplaceCategories(categories)
	return categories, nil
}

// LoadTasks fetches tasks (optionally for one category) and replaces the
// store's collection.
func (c *Commands) LoadTasks(ctx context.Context, categoryID *uint) ([]model.Task, error) {
	tasks, err := c.remote.ListTasks(ctx, categoryID)
	if err != nil {
		return nil, c.observe(err)
	}
	c.store.ReplaceTasks(tasks)
	return tasks, nil
}

// CreateCategory validates the name and color, creates the category
// remotely, and inserts the server's version into the store.
func (c *Commands) CreateCategory(ctx context.Context, name, color string) (*model.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if color != "" && !model.ValidColor(color) {
		return nil, fmt.Errorf("color must look like #RRGGBB, got %q", color)
	}
	category, err := c.remote.CreateCategory(ctx, api.CategoryCreate{Name: name, Color: color})
	if err != nil {
		return nil, c.observe(err)
	}
	c.store.UpsertCategory(*category)
	return category, nil
}

// UpdateCategory renames or recolors a category.
func (c *Commands) UpdateCategory(ctx context.Context, id uint, patch api.CategoryPatch) (*model.Category, error) {
	if patch.Name != nil {
		if err := validateCategoryName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Color != nil && !model.ValidColor(*patch.Color) {
		return nil, fmt.Errorf("color must look like #RRGGBB, got %q", *patch.Color)
	}
	category, err := c.remote.UpdateCategory(ctx, id, patch)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			c.store.RemoveCategory(id)
		}
		return nil, c.observe(err)
	}
	c.store.UpsertCategory(*category)
	return category, nil
}

// DeleteCategory removes a category and, on success, cascades the removal
// of its tasks in the store. The caller is expected to have confirmed the
// deletion with the user first.
func (c *Commands) DeleteCategory(ctx context.Context, id uint) error {
	if err := c.remote.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			c.store.RemoveCategory(id)
		}
		return c.observe(err)
	}
	c.store.RemoveCategory(id)
	return nil
}

// CreateTask validates the title and category, creates the task remotely,
// and inserts the server's version into the store.
func (c *Commands) CreateTask(ctx context.Context, req api.TaskCreate) (*model.Task, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.CategoryID == 0 {
		return nil, errors.New("category is required")
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q", req.Priority)
	}
	task, err := c.remote.CreateTask(ctx, req)
	if err != nil {
		return nil, c.observe(err)
	}
	c.store.UpsertTask(*task)
	return task, nil
}

// UpdateTask applies a partial edit to a task.
func (c *Commands) UpdateTask(ctx context.Context, id uint, patch api.TaskPatch) (*model.Task, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, errors.New("title is required")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", *patch.Status)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q", *patch.Priority)
	}
	task, err := c.remote.UpdateTask(ctx, id, patch)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			c.store.RemoveTask(id)
		}
		return nil, c.observe(err)
	}
	c.store.UpsertTask(*task)
	return task, nil
}

// DeleteTask removes a task. The caller is expected to have confirmed the
// deletion with the user first.
func (c *Commands) DeleteTask(ctx context.Context, id uint) error {
	if err := c.remote.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			c.store.RemoveTask(id)
		}
		return c.observe(err)
	}
	c.store.RemoveTask(id)
	return nil
}

func (c *Commands) observe(err error) error {
	if errors.Is(err, api.ErrUnauthorized) && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return err
}

func validateCategoryName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len([]rune(name)) > model.MaxCategoryNameLen {
		return fmt.Errorf("name exceeds %d characters", model.MaxCategoryNameLen)
	}
	return nil
}
