package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/schema"
)

func TestValidRemindersAcceptsWellFormed(t *testing.T) {
	assert.True(t, ValidReminders(nil))
	assert.True(t, ValidReminders([]schema.Reminder{
		{ID: "a", Title: "aspirin", Time: "08:30", Enabled: true, Repeat: schema.RepeatDaily},
		{ID: "b", Title: "insulin", Time: "21:00", Repeat: schema.RepeatWeekly, DaysOfWeek: []time.Weekday{time.Monday, time.Thursday}},
	}))
}

func TestValidRemindersFailsClosed(t *testing.T) {
	// one malformed element rejects the entire collection
	assert.False(t, ValidReminders([]schema.Reminder{
		{ID: "a", Title: "aspirin", Time: "08:30", Repeat: schema.RepeatDaily},
		{ID: "b", Title: "broken", Time: "8h30", Repeat: schema.RepeatDaily},
	}))

	assert.False(t, ValidReminders([]schema.Reminder{
		{ID: "", Title: "no id", Time: "08:30", Repeat: schema.RepeatNone},
	}))

	assert.False(t, ValidReminders([]schema.Reminder{
		{ID: "a", Title: "bad repeat", Time: "08:30", Repeat: "sometimes"},
	}))

	assert.False(t, ValidReminders([]schema.Reminder{
		{ID: "a", Title: "days without weekly", Time: "08:30", Repeat: schema.RepeatDaily, DaysOfWeek: []time.Weekday{time.Monday}},
	}))
}
