package board

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/store"
)

type statusResponse struct {
	task *model.Task
	err  error
}

// scriptedRemote blocks each UpdateTaskStatus call until the test feeds an
// answer for that target status, so response ordering is controlled.
type scriptedRemote struct {
	entered chan model.Status
	answers map[model.Status]chan statusResponse
	calls   atomic.Int64
}

func newScriptedRemote() *scriptedRemote {
	answers := make(map[model.Status]chan statusResponse)
	for _, s := range model.Statuses {
		answers[s] = make(chan statusResponse, 1)
	}
	return &scriptedRemote{
		entered: make(chan model.Status, 8),
		answers: answers,
	}
}

func (r *scriptedRemote) UpdateTaskStatus(ctx context.Context, id uint, status model.Status) (*model.Task, error) {
	r.calls.Add(1)
	r.entered <- status
	resp := <-r.answers[status]
	return resp.task, resp.err
}

func newTestController() (*Controller, *store.Store, *scriptedRemote) {
	st := store.New()
	st.ReplaceTasks([]model.Task{{ID: 1, Title: "Write report", Status: model.StatusPending}})
	remote := newScriptedRemote()
	return NewController(st, remote), st, remote
}

func TestTransition_Success(t *testing.T) {
	ctrl, st, remote := newTestController()
	remote.answers[model.StatusCompleted] <- statusResponse{
		task: &model.Task{ID: 1, Title: "Write report", Status: model.StatusCompleted},
	}

	err := ctrl.Transition(context.Background(), 1, model.StatusCompleted)
	require.NoError(t, err)

	task, ok := st.TaskByID(1)
	require.True(t, ok)
	assert.Equal(t, model.StatusCompleted, task.Status)
}

func TestTransition_NoOpOnSameStatus(t *testing.T) {
	ctrl, _, remote := newTestController()

	err := ctrl.Transition(context.Background(), 1, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remote.calls.Load(), "no remote call for a same-status transition")
}

func TestTransition_InvalidStatus(t *testing.T) {
	ctrl, _, _ := newTestController()
	err := ctrl.Transition(context.Background(), 1, model.Status("Archived"))
	assert.Error(t, err)
}

func TestTransition_UnknownTask(t *testing.T) {
	ctrl, _, _ := newTestController()
	err := ctrl.Transition(context.Background(), 99, model.StatusCompleted)
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestTransition_RollbackOnRemoteFailure(t *testing.T) {
	ctrl, st, remote := newTestController()
	remote.answers[model.StatusCompleted] <- statusResponse{err: errors.New("boom")}

	err := ctrl.Transition(context.Background(), 1, model.StatusCompleted)
	require.Error(t, err)

	task, _ := st.TaskByID(1)
	assert.Equal(t, model.StatusPending, task.Status, "failed transition must roll back")
}

func TestTransition_LastRequestWins(t *testing.T) {
	ctrl, st, remote := newTestController()

	// First request: Pending -> Completed, response held back.
	first := make(chan error, 1)
	go func() {
		first <- ctrl.Transition(context.Background(), 1, model.StatusCompleted)
	}()
	assert.Equal(t, model.StatusCompleted, <-remote.entered)

	// Second request issued before the first resolves: back to Pending.
	second := make(chan error, 1)
	go func() {
		second <- ctrl.Transition(context.Background(), 1, model.StatusPending)
	}()
	assert.Equal(t, model.StatusPending, <-remote.entered)

	// Resolve the second (later) request first.
	remote.answers[model.StatusPending] <- statusResponse{
		task: &model.Task{ID: 1, Title: "Write report", Status: model.StatusPending},
	}
	require.NoError(t, <-second)

	// The first request's response arrives late and must be discarded.
	remote.answers[model.StatusCompleted] <- statusResponse{
		task: &model.Task{ID: 1, Title: "Write report", Status: model.StatusCompleted},
	}
	assert.ErrorIs(t, <-first, ErrSuperseded)

	task, _ := st.TaskByID(1)
	assert.Equal(t, model.StatusPending, task.Status, "last requested status wins")
}

func TestTransition_StaleFailureDoesNotRollBack(t *testing.T) {
	ctrl, st, remote := newTestController()

	first := make(chan error, 1)
	go func() {
		first <- ctrl.Transition(context.Background(), 1, model.StatusCompleted)
	}()
	assert.Equal(t, model.StatusCompleted, <-remote.entered)

	second := make(chan error, 1)
	go func() {
		second <- ctrl.Transition(context.Background(), 1, model.StatusInProgress)
	}()
	assert.Equal(t, model.StatusInProgress, <-remote.entered)

	remote.answers[model.StatusInProgress] <- statusResponse{
		task: &model.Task{ID: 1, Status: model.StatusInProgress},
	}
	require.NoError(t, <-second)

	// The superseded request fails remotely; its rollback must not fire.
	remote.answers[model.StatusCompleted] <- statusResponse{err: errors.New("boom")}
	assert.ErrorIs(t, <-first, ErrSuperseded)

	task, _ := st.TaskByID(1)
	assert.Equal(t, model.StatusInProgress, task.Status)
}

func TestTransition_ClosedControllerIgnoresLateResponse(t *testing.T) {
	ctrl, st, remote := newTestController()

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Transition(context.Background(), 1, model.StatusCompleted)
	}()
	assert.Equal(t, model.StatusCompleted, <-remote.entered)

	ctrl.Close()
	remote.answers[model.StatusCompleted] <- statusResponse{
		task: &model.Task{ID: 1, Status: model.StatusCompleted},
	}
	assert.ErrorIs(t, <-done, ErrClosed)

	// Only the optimistic update from before the close is visible; the
	// late response itself was not applied.
	task, _ := st.TaskByID(1)
	assert.Equal(t, model.StatusCompleted, task.Status)

	// New transitions are rejected outright.
	err := ctrl.Transition(context.Background(), 1, model.StatusInProgress)
	assert.ErrorIs(t, err, ErrClosed)
}
