package task

import (
	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// List returns all tasks paired with their current positional IDs
func (u *UseCase) List() []Entry {
	u.mu.Lock()
	defer u.mu.Unlock()

	entries := make([]Entry, 0, len(u.tasks))
	for i, t := range u.tasks {
		entries = append(entries, Entry{ID: i, Task: t})
	}
	return entries
}

// Get returns the task at the given positional ID
func (u *UseCase) Get(id int) (*model.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if id < 0 || id >= len(u.tasks) {
		return nil, goerr.Wrap(model.ErrTaskNotFound, "task id out of range", goerr.V("task_id", id))
	}
	return u.tasks[id], nil
}
