package reminder

import (
	"context"
	"time"

	"github.com/m-mizutani/cortex/pkg/utils/logging"
)

// stopTimeout bounds how long Stop waits for the loop to exit
const stopTimeout = time.Second

// Start launches the background due-check loop. Calling Start while the
// loop is running is a no-op.
func (u *UseCase) Start(ctx context.Context) {
	u.runMu.Lock()
	defer u.runMu.Unlock()

	if u.done != nil {
		return
	}

	u.done = make(chan struct{})
	u.stopped = make(chan struct{})
	go u.loop(ctx, u.done, u.stopped)

	logging.From(ctx).Debug("reminder checker started", "interval", u.interval)
}

// Stop signals the loop to exit and waits for it, bounded by
// stopTimeout. Calling Stop when the loop is not running is a no-op.
func (u *UseCase) Stop() {
	u.runMu.Lock()
	defer u.runMu.Unlock()

	if u.done == nil {
		return
	}

	close(u.done)
	select {
	case <-u.stopped:
	case <-time.After(stopTimeout):
	}

	u.done = nil
	u.stopped = nil
}

func (u *UseCase) loop(ctx context.Context, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	for {
		fired, err := u.CheckDue(ctx, u.now())
		if err != nil {
			logging.From(ctx).Error("reminder check failed", "error", err)
		}
		for _, r := range fired {
			if u.notify != nil {
				u.notify(ctx, r)
			}
		}

		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-time.After(u.interval):
		}
	}
}
