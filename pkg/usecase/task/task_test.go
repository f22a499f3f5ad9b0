package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/cortex/pkg/usecase/task"
	"github.com/m-mizutani/gt"
)

func setupTasks(t *testing.T) (*task.UseCase, repository.Repository) {
	repo, err := repository.NewLocal(t.TempDir())
	gt.NoError(t, err)

	uc, err := task.New(context.Background(), repo)
	gt.NoError(t, err)
	return uc, repo
}

func TestAddAndList(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	id, err := uc.Add(ctx, "buy milk", nil, model.PriorityMedium)
	gt.NoError(t, err)
	gt.Equal(t, id, 0)

	due := time.Date(2024, 5, 1, 17, 0, 0, 0, time.Local)
	id, err = uc.Add(ctx, "call mom", &due, model.PriorityHigh)
	gt.NoError(t, err)
	gt.Equal(t, id, 1)

	entries := uc.List()
	gt.A(t, entries).Length(2)
	gt.Equal(t, entries[0].Task.Description, "buy milk")
	gt.Equal(t, entries[0].Task.Status, model.StatusPending)
	gt.Equal(t, entries[1].Task.Description, "call mom")
	gt.V(t, entries[1].Task.DueAt).NotNil()
	gt.NotEqual(t, entries[0].Task.UID, entries[1].Task.UID)
}

func TestDeleteShiftsIDs(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	for _, desc := range []string{"a", "b", "c", "d"} {
		_, err := uc.Add(ctx, desc, nil, model.PriorityLow)
		gt.NoError(t, err)
	}

	removed, err := uc.Delete(ctx, 1)
	gt.NoError(t, err)
	gt.Equal(t, removed.Description, "b")

	// IDs compact to 0..len-1 in original relative order
	entries := uc.List()
	gt.A(t, entries).Length(3)
	gt.Equal(t, entries[0].ID, 0)
	gt.Equal(t, entries[0].Task.Description, "a")
	gt.Equal(t, entries[1].ID, 1)
	gt.Equal(t, entries[1].Task.Description, "c")
	gt.Equal(t, entries[2].ID, 2)
	gt.Equal(t, entries[2].Task.Description, "d")
}

func TestDeleteNotFound(t *testing.T) {
	uc, _ := setupTasks(t)

	_, err := uc.Delete(context.Background(), 0)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrTaskNotFound))

	_, err = uc.Delete(context.Background(), -1)
	gt.True(t, errors.Is(err, model.ErrTaskNotFound))
}

func TestUpdatePatch(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "write report", nil, model.PriorityMedium)
	gt.NoError(t, err)

	status := model.StatusCompleted
	priority := model.PriorityHigh
	updated, err := uc.Update(ctx, 0, model.TaskPatch{Status: &status, Priority: &priority})
	gt.NoError(t, err)
	gt.Equal(t, updated.Status, model.StatusCompleted)
	gt.Equal(t, updated.Priority, model.PriorityHigh)
	// Unpatched fields are untouched
	gt.Equal(t, updated.Description, "write report")
	gt.V(t, updated.DueAt).Nil()
}

func TestGet(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "water plants", nil, model.PriorityMedium)
	gt.NoError(t, err)

	got, err := uc.Get(0)
	gt.NoError(t, err)
	gt.Equal(t, got.Description, "water plants")

	_, err = uc.Get(1)
	gt.True(t, errors.Is(err, model.ErrTaskNotFound))
}

func TestUpdateNotFound(t *testing.T) {
	uc, _ := setupTasks(t)

	_, err := uc.Update(context.Background(), 7, model.TaskPatch{})
	gt.True(t, errors.Is(err, model.ErrTaskNotFound))
}

func TestSearchRegexp(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	for _, desc := range []string{"Buy milk", "buy bread", "sell bike"} {
		_, err := uc.Add(ctx, desc, nil, model.PriorityMedium)
		gt.NoError(t, err)
	}

	found := uc.Search("^buy")
	gt.A(t, found).Length(2)
	gt.Equal(t, found[0].ID, 0)
	gt.Equal(t, found[1].ID, 1)
}

func TestSearchInvalidPatternFallsBack(t *testing.T) {
	uc, _ := setupTasks(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "fix bracket [urgent]", nil, model.PriorityHigh)
	gt.NoError(t, err)

	// "[urgent" does not compile as a regexp; substring match must kick in
	found := uc.Search("[urgent")
	gt.A(t, found).Length(1)
	gt.Equal(t, found[0].Task.Description, "fix bracket [urgent]")
}

func TestTasksPersistAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)
	uc, err := task.New(ctx, repo)
	gt.NoError(t, err)

	_, err = uc.Add(ctx, "persisted task", nil, model.PriorityLow)
	gt.NoError(t, err)

	repo2, err := repository.NewLocal(dir)
	gt.NoError(t, err)
	uc2, err := task.New(ctx, repo2)
	gt.NoError(t, err)

	entries := uc2.List()
	gt.A(t, entries).Length(1)
	gt.Equal(t, entries[0].Task.Description, "persisted task")
	gt.Equal(t, entries[0].Task.Priority, model.PriorityLow)
}
