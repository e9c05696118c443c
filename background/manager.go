package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
)

// BackgroundManager runs the companion background workers.
type BackgroundManager struct {
	taskServer *machinery.Server

	worker *machinery.Worker

	notification NotificationCenter
}

func New(taskServer *machinery.Server, notification NotificationCenter) *BackgroundManager {
	return &BackgroundManager{
		taskServer:   taskServer,
		notification: notification,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("companion-worker", 5)
	return m.worker.Launch()
}
