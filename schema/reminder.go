package schema

import (
	"fmt"
	"regexp"
	"time"
)

// RepeatMode decides how often a reminder re-arms after firing.
type RepeatMode string

const (
	RepeatNone   RepeatMode = "none"
	RepeatDaily  RepeatMode = "daily"
	RepeatWeekly RepeatMode = "weekly"
)

const (
	// ReminderStateKey is the fixed key of the single document that holds
	// the serialized reminder array.
	ReminderStateKey = "reminders"

	ReminderCollection = "reminderState"

	// TriggerKeyLayout formats the composite trigger key: one firing at most
	// per calendar minute.
	TriggerKeyLayout = "2006-01-02 15:04"

	// ClockLayout is the time-of-day form reminders are keyed to.
	ClockLayout = "15:04"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Reminder is a scheduled medication alert. The scheduler owns Enabled,
// LastTriggeredKey and NextSnoozeAt; everything else is user-supplied.
type Reminder struct {
	ID               string         `json:"id" bson:"id"`
	Title            string         `json:"title" bson:"title"`
	Time             string         `json:"time" bson:"time"`
	Enabled          bool           `json:"enabled" bson:"enabled"`
	Repeat           RepeatMode     `json:"repeat" bson:"repeat"`
	DaysOfWeek       []time.Weekday `json:"days_of_week,omitempty" bson:"days_of_week,omitempty"`
	LastTriggeredKey string         `json:"last_triggered_key,omitempty" bson:"last_triggered_key,omitempty"`
	NextSnoozeAt     *time.Time     `json:"next_snooze_at,omitempty" bson:"next_snooze_at,omitempty"`
}

// Validate checks a reminder satisfies the shape the scheduler relies on.
// Malformed persisted data is rejected wholesale by the store, so any
// reminder that reaches the scheduler has passed these checks.
func (r Reminder) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("reminder id is empty")
	}
	if r.Title == "" {
		return fmt.Errorf("reminder title is empty")
	}
	if !clockPattern.MatchString(r.Time) {
		return fmt.Errorf("invalid reminder time: %q", r.Time)
	}
	switch r.Repeat {
	case RepeatNone, RepeatDaily:
		if len(r.DaysOfWeek) > 0 {
			return fmt.Errorf("days_of_week is only valid for weekly reminders")
		}
	case RepeatWeekly:
		if len(r.DaysOfWeek) == 0 {
			return fmt.Errorf("weekly reminder has no days_of_week")
		}
		for _, d := range r.DaysOfWeek {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("invalid weekday: %d", d)
			}
		}
	default:
		return fmt.Errorf("invalid repeat mode: %q", r.Repeat)
	}
	return nil
}

// TriggerKey builds the composite date+time key for the given instant.
func TriggerKey(t time.Time) string {
	return t.Format(TriggerKeyLayout)
}

// FiresOn reports whether the reminder's weekday filter admits the given day.
// Non-weekly reminders fire on every day.
func (r Reminder) FiresOn(day time.Weekday) bool {
	if r.Repeat != RepeatWeekly {
		return true
	}
	for _, d := range r.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
