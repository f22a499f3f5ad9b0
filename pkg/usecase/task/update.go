package task

import (
	"context"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Update merges the patch into the task at the given positional ID
func (u *UseCase) Update(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if id < 0 || id >= len(u.tasks) {
		return nil, goerr.Wrap(model.ErrTaskNotFound, "task id out of range", goerr.V("task_id", id))
	}

	prev := *u.tasks[id]
	patch.Apply(u.tasks[id])
	if err := u.persistLocked(ctx); err != nil {
		*u.tasks[id] = prev
		return nil, err
	}

	return u.tasks[id], nil
}
