package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const defaultInterval = 30 * time.Second

// Notifier receives a reminder that has come due
type Notifier func(ctx context.Context, r *model.Reminder)

// UseCase provides reminder operations plus the background due-check
// loop. One mutex guards the collection: the checker goroutine is the
// only concurrent writer, and Add on the main path must not interleave
// with a check cycle.
type UseCase struct {
	repo     repository.Repository
	interval time.Duration
	notify   Notifier
	now      func() time.Time

	mu        sync.Mutex
	reminders []*model.Reminder

	runMu   sync.Mutex
	done    chan struct{}
	stopped chan struct{}
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithInterval sets the due-check polling interval
func WithInterval(d time.Duration) Option {
	return func(uc *UseCase) {
		if d > 0 {
			uc.interval = d
		}
	}
}

// WithNotifier sets the callback invoked for each fired reminder
func WithNotifier(n Notifier) Option {
	return func(uc *UseCase) {
		uc.notify = n
	}
}

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New creates a reminder UseCase, loading the persisted collection
func New(ctx context.Context, repo repository.Repository, opts ...Option) (*UseCase, error) {
	uc := &UseCase{
		repo:     repo,
		interval: defaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	if err := repo.Load(ctx, model.DocumentReminders, &uc.reminders); err != nil {
		return nil, goerr.Wrap(err, "failed to load reminders")
	}
	return uc, nil
}

// List returns the current reminder collection
func (u *UseCase) List() []*model.Reminder {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]*model.Reminder, len(u.reminders))
	copy(out, u.reminders)
	return out
}

func (u *UseCase) persistLocked(ctx context.Context) error {
	if err := u.repo.Save(ctx, model.DocumentReminders, u.reminders); err != nil {
		return goerr.Wrap(err, "failed to save reminders")
	}
	return nil
}
