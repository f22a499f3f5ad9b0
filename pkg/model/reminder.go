package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var ErrInvalidTimeFormat = goerr.New("invalid time format, expected HH:MM")

const timeOfDayLayout = "15:04:05"

// Reminder is a one-shot reminder keyed by wall-clock time of day. The
// record holds no date: a reminder whose time has already passed today
// simply fires on the next matching wall-clock minute. Once fired,
// Active flips to false and the record is removed from the store.
type Reminder struct {
	Text      string    `json:"text"`
	TimeOfDay string    `json:"time"` // HH:MM:SS
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// NewReminder creates an active reminder from an HH:MM time string
func NewReminder(text, timeOfDay string) (*Reminder, error) {
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	return &Reminder{
		Text:      text,
		TimeOfDay: t.Format(timeOfDayLayout),
		CreatedAt: time.Now(),
		Active:    true,
	}, nil
}

// ParseTimeOfDay parses an HH:MM clock time
func ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidTimeFormat, "failed to parse time of day", goerr.V("input", s))
	}
	return t, nil
}

// SecondsOfDay returns the reminder time as seconds since midnight
func (r *Reminder) SecondsOfDay() (int, error) {
	t, err := time.Parse(timeOfDayLayout, r.TimeOfDay)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid stored time of day", goerr.V("time", r.TimeOfDay))
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}
