package task

import (
	"context"
	"sync"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Entry pairs a task with its current positional ID. The ID is only
// valid until the next Delete, which shifts every later position.
type Entry struct {
	ID   int
	Task *model.Task
}

// UseCase provides task operations over an ordered collection. Every
// mutation persists the whole collection synchronously before it
// returns. The mutex is defensive serialization for concurrent callers;
// nothing mutates tasks in the background.
type UseCase struct {
	repo repository.Repository

	mu    sync.Mutex
	tasks []*model.Task
}

// New creates a task UseCase, loading the persisted collection
func New(ctx context.Context, repo repository.Repository) (*UseCase, error) {
	uc := &UseCase{repo: repo}
	if err := repo.Load(ctx, model.DocumentTasks, &uc.tasks); err != nil {
		return nil, goerr.Wrap(err, "failed to load tasks")
	}
	return uc, nil
}

func (u *UseCase) persistLocked(ctx context.Context) error {
	if err := u.repo.Save(ctx, model.DocumentTasks, u.tasks); err != nil {
		return goerr.Wrap(err, "failed to save tasks")
	}
	return nil
}
