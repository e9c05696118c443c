package background

import (
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/caremate/companion-api/schema"
)

// EnqueueReminderFired hands a fired reminder to the background queue.
// The scheduler calls this fire-and-forget; a broker outage only costs
// the push notification, never the alarm itself.
func EnqueueReminderFired(taskServer *machinery.Server, r schema.Reminder) error {
	_, err := taskServer.SendTask(&tasks.Signature{
		Name: TaskReminderFired,
		Args: []tasks.Arg{
			{Type: "string", Value: r.Title},
			{Type: "string", Value: time.Now().Format(time.RFC3339)},
		},
	})
	return err
}
