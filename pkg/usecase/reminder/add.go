package reminder

import (
	"context"

	"github.com/m-mizutani/cortex/pkg/model"
)

// Add creates an active reminder from an HH:MM time of day. A time that
// has already passed today is still valid: the stored record is
// date-less and fires at the next matching wall-clock minute.
func (u *UseCase) Add(ctx context.Context, text, timeOfDay string) (*model.Reminder, error) {
	r, err := model.NewReminder(text, timeOfDay)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.reminders = append(u.reminders, r)
	if err := u.persistLocked(ctx); err != nil {
		u.reminders = u.reminders[:len(u.reminders)-1]
		return nil, err
	}

	return r, nil
}
