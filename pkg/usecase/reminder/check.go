package reminder

import (
	"context"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/utils/logging"
)

// dueWindow is the tolerance around a reminder's time of day
const dueWindow = 60 // seconds

// CheckDue fires every active reminder whose time of day lies within
// the tolerance window of now, comparing wall-clock times without
// dates. Fired reminders flip to inactive, leave the collection and are
// returned for notification. The updated collection is persisted once
// per call, not once per reminder, and a fired reminder is gone on the
// next call with the same clock.
func (u *UseCase) CheckDue(ctx context.Context, now time.Time) ([]*model.Reminder, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()

	var fired []*model.Reminder
	kept := make([]*model.Reminder, 0, len(u.reminders))
	for _, r := range u.reminders {
		if !r.Active {
			// Retired records are never re-evaluated; drop them
			continue
		}

		sec, err := r.SecondsOfDay()
		if err != nil {
			logging.From(ctx).Warn("skipping reminder with invalid time", "time", r.TimeOfDay, "error", err)
			kept = append(kept, r)
			continue
		}

		diff := nowSec - sec
		if diff < 0 {
			diff = -diff
		}
		if diff < dueWindow {
			r.Active = false
			fired = append(fired, r)
			continue
		}
		kept = append(kept, r)
	}

	if len(kept) == len(u.reminders) {
		return nil, nil
	}

	prev := u.reminders
	u.reminders = kept
	if err := u.persistLocked(ctx); err != nil {
		u.reminders = prev
		for _, r := range fired {
			r.Active = true
		}
		return nil, err
	}

	return fired, nil
}
