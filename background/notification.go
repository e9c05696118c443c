package background

import (
	log "github.com/sirupsen/logrus"
)

// TaskReminderFired is the queue task enqueued by the scheduler each time
// a reminder fires, so delivery happens off the scheduler's tick.
const TaskReminderFired = "reminder_fired"

// NotificationCenter delivers a reminder notification to whatever channel
// the deployment has configured.
type NotificationCenter interface {
	NotifyReminder(title, firedAt string) error
}

// LogNotificationCenter is the default delivery channel: a structured log
// line. Push providers plug in behind the same interface.
type LogNotificationCenter struct{}

func NewLogNotificationCenter() *LogNotificationCenter {
	return &LogNotificationCenter{}
}

func (LogNotificationCenter) NotifyReminder(title, firedAt string) error {
	log.WithFields(log.Fields{
		"prefix":   "notify",
		"title":    title,
		"fired_at": firedAt,
	}).Info("reminder notification")
	return nil
}

// NotifyReminderFired is the machinery task body.
func (m *BackgroundManager) NotifyReminderFired(title, firedAt string) error {
	return m.notification.NotifyReminder(title, firedAt)
}
