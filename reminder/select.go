package reminder

import (
	"time"

	"github.com/caremate/companion-api/schema"
)

// TriggerReason says which rule selected a reminder.
type TriggerReason string

const (
	ReasonSnooze   TriggerReason = "snooze"
	ReasonSchedule TriggerReason = "schedule"
)

// SelectTrigger decides which reminder, if any, should fire at the given
// instant. It is pure: the caller applies the resulting state transition.
//
// Snooze-due reminders take strict priority over fresh time matches. At
// most one reminder is selected per call; among equally eligible
// reminders, list order decides (implementation-defined, not a contract).
func SelectTrigger(reminders []schema.Reminder, now time.Time) (index int, reason TriggerReason, ok bool) {
	for i, r := range reminders {
		if !r.Enabled {
			continue
		}
		if r.NextSnoozeAt != nil && !now.Before(*r.NextSnoozeAt) {
			return i, ReasonSnooze, true
		}
	}

	currentKey := schema.TriggerKey(now)
	clock := now.Format(schema.ClockLayout)

	for i, r := range reminders {
		if !r.Enabled {
			continue
		}
		if r.Time != clock {
			continue
		}
		// at most one firing per calendar minute
		if r.LastTriggeredKey == currentKey {
			continue
		}
		if !r.FiresOn(now.Weekday()) {
			continue
		}
		return i, ReasonSchedule, true
	}

	return 0, "", false
}
