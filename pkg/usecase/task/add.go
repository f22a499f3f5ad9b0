package task

import (
	"context"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Add appends a new pending task and returns its positional ID
func (u *UseCase) Add(ctx context.Context, description string, dueAt *time.Time, priority model.Priority) (int, error) {
	if description == "" {
		return 0, goerr.New("task description is empty")
	}
	if err := priority.Validate(); err != nil {
		return 0, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.tasks = append(u.tasks, model.NewTask(description, dueAt, priority))
	if err := u.persistLocked(ctx); err != nil {
		u.tasks = u.tasks[:len(u.tasks)-1]
		return 0, err
	}

	return len(u.tasks) - 1, nil
}
