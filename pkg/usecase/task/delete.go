package task

import (
	"context"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Delete removes the task at the given positional ID and returns it.
// Every task after the removed one shifts down by one position.
func (u *UseCase) Delete(ctx context.Context, id int) (*model.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if id < 0 || id >= len(u.tasks) {
		return nil, goerr.Wrap(model.ErrTaskNotFound, "task id out of range", goerr.V("task_id", id))
	}

	removed := u.tasks[id]
	rest := make([]*model.Task, 0, len(u.tasks)-1)
	rest = append(rest, u.tasks[:id]...)
	rest = append(rest, u.tasks[id+1:]...)

	prev := u.tasks
	u.tasks = rest
	if err := u.persistLocked(ctx); err != nil {
		u.tasks = prev
		return nil, err
	}

	return removed, nil
}
