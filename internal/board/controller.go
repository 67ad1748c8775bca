// Package board realizes user intent against the entity store: status
// transitions coming from drag-and-drop or menu selection, and the
// create/update/delete commands for tasks and categories. Both paths apply
// local changes optimistically and reconcile with the remote API.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"taskflow/internal/model"
	"taskflow/internal/store"
)

var (
	// ErrUnknownTask means the transition target is not in the store.
	ErrUnknownTask = errors.New("unknown task")
	// ErrSuperseded means a later transition for the same task was issued
	// before this one resolved; its result was discarded.
	ErrSuperseded = errors.New("transition superseded")
	// ErrClosed means the controller was detached before the response
	// arrived; the store was left untouched.
	ErrClosed = errors.New("controller closed")
)

// StatusWriter is the remote side of a transition. *api.Client satisfies it.
type StatusWriter interface {
	UpdateTaskStatus(ctx context.Context, id uint, status model.Status) (*model.Task, error)
}

// Controller moves tasks between board columns. It does not care whether a
// request came from a drop gesture or a menu; both arrive as Transition
// calls. Per task, requests are last-write-wins: a response belonging to a
// superseded request is discarded rather than applied out of order.
type Controller struct {
	mu     sync.Mutex
	store  *store.Store
	remote StatusWriter
	seq    map[uint]uint64
	closed bool
}

func NewController(s *store.Store, remote StatusWriter) *Controller {
	return &Controller{store: s, remote: remote, seq: make(map[uint]uint64)}
}

// Transition moves the task to target. The store is updated optimistically
// before the remote call; on failure of the latest request the prior status
// is restored, so the visible state is always either the requested status
// or the one the task had before. Moving a task to its current status is a
// legal no-op.
func (c *Controller) Transition(ctx context.Context, taskID uint, target model.Status) error {
	if !target.Valid() {
		return fmt.Errorf("invalid status %q", target)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	task, ok := c.store.TaskByID(taskID)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownTask, taskID)
	}
	if task.Status == target {
		c.mu.Unlock()
		return nil
	}
	prior := task.Status
	c.seq[taskID]++
	ticket := c.seq[taskID]
	c.store.SetTaskStatus(taskID, target)
	c.mu.Unlock()

	updated, err := c.remote.UpdateTaskStatus(ctx, taskID, target)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.seq[taskID] != ticket {
		return ErrSuperseded
	}
	if err != nil {
		c.store.SetTaskStatus(taskID, prior)
		return fmt.Errorf("transition task %d: %w", taskID, err)
	}
	if updated != nil {
		c.store.UpsertTask(*updated)
	}
	return nil
}

// Close detaches the controller, e.g. when its view goes away. In-flight
// responses arriving afterwards become no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}
