// Package reminder implements the medication reminder scheduler: a
// polling loop that matches reminders against wall-clock time, triggers at
// most one per tick, and owns the in-memory reminder list.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/caremate/companion-api/alarm"
	"github.com/caremate/companion-api/schema"
)

const logPrefix = "scheduler"

// DefaultPollInterval bounds worst-case trigger latency. Reminders are
// keyed to the minute, so second-level precision is not required.
const DefaultPollInterval = 5 * time.Second

var (
	ErrReminderNotFound      = fmt.Errorf("reminder not found")
	ErrNoActiveReminder      = fmt.Errorf("no reminder is currently alarming")
	ErrInvalidSnoozeDuration = fmt.Errorf("snooze duration must be 5, 10 or 15 minutes")
)

// Store persists the reminder list at defined checkpoints: hydration at
// startup and a save after every mutation. Failures are logged, never
// fatal; the in-memory list stays authoritative for the session.
type Store interface {
	LoadReminders(ctx context.Context) ([]schema.Reminder, error)
	SaveReminders(ctx context.Context, reminders []schema.Reminder) error
}

// Scheduler owns the reminder list and the alarm lifecycle.
type Scheduler struct {
	mu        sync.Mutex
	reminders []schema.Reminder
	activeID  string

	store    Store
	sounder  alarm.Sounder
	clock    Clock
	interval time.Duration

	ticks       tally.Counter
	triggers    tally.Counter
	snoozes     tally.Counter
	alarmErrors tally.Counter

	// notify is a fire-and-forget hook invoked after each trigger, used
	// to enqueue the background push notification task.
	notify func(schema.Reminder)
}

// NewScheduler wires the scheduler's dependencies. A nil notify hook is
// allowed.
func NewScheduler(store Store, sounder alarm.Sounder, clock Clock, scope tally.Scope, interval time.Duration, notify func(schema.Reminder)) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Scheduler{
		store:       store,
		sounder:     sounder,
		clock:       clock,
		interval:    interval,
		ticks:       scope.Counter("ticks"),
		triggers:    scope.Counter("triggers"),
		snoozes:     scope.Counter("snoozes"),
		alarmErrors: scope.Counter("alarm_errors"),
		notify:      notify,
	}
}

// Hydrate loads the persisted reminder list. A load failure leaves the
// scheduler with an empty list and is not fatal.
func (s *Scheduler) Hydrate(ctx context.Context) {
	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("load reminders, starting empty")
		reminders = nil
	}

	s.mu.Lock()
	s.reminders = reminders
	s.mu.Unlock()
}

// Run polls until the context is cancelled, then releases the sounder.
func (s *Scheduler) Run(ctx context.Context) {
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"interval": s.interval,
	}).Info("scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer func() {
		// the audio context is released on every exit path
		if err := s.sounder.Close(); err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Error("close sounder")
		}
	}()

	s.Tick()

	for {
		select {
		case <-ctx.Done():
			log.WithField("prefix", logPrefix).Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick evaluates one scheduler pass: at most one reminder fires.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks.Inc(1)

	now := s.clock.Now()
	index, reason, ok := SelectTrigger(s.reminders, now)
	if !ok {
		return
	}

	s.applyTrigger(index, reason, now)
}

// applyTrigger mutates the selected reminder and starts the alarm. Caller
// holds the lock.
func (s *Scheduler) applyTrigger(index int, reason TriggerReason, now time.Time) {
	r := &s.reminders[index]

	if err := s.sounder.Start(); err != nil {
		// a silent alarm does not prevent the bookkeeping below
		s.alarmErrors.Inc(1)
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"id":     r.ID,
			"error":  err,
		}).Error("start alarm")
	}

	r.LastTriggeredKey = schema.TriggerKey(now)
	// the snooze is consumed by firing; clearing it prevents an
	// immediate re-trigger on the next tick
	r.NextSnoozeAt = nil
	if r.Repeat == schema.RepeatNone {
		r.Enabled = false
	}

	s.activeID = r.ID
	s.triggers.Inc(1)

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"id":     r.ID,
		"title":  r.Title,
		"reason": reason,
	}).Info("reminder fired")

	triggered := *r
	s.persistLocked()

	if s.notify != nil {
		go s.notify(triggered)
	}
}

// Snooze pushes the active reminder out by the chosen duration and
// silences the alarm. The reminder stays enabled.
func (s *Scheduler) Snooze(minutes int) (schema.Reminder, error) {
	switch minutes {
	case 5, 10, 15:
	default:
		return schema.Reminder{}, ErrInvalidSnoozeDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID == "" {
		return schema.Reminder{}, ErrNoActiveReminder
	}

	index, ok := s.indexOfLocked(s.activeID)
	if !ok {
		s.activeID = ""
		return schema.Reminder{}, ErrNoActiveReminder
	}

	at := s.clock.Now().Add(time.Duration(minutes) * time.Minute)
	s.reminders[index].NextSnoozeAt = &at
	// a fired one-shot has already disabled itself; the snooze must
	// still ring, and its trigger will disable the one-shot again
	s.reminders[index].Enabled = true
	s.activeID = ""
	s.snoozes.Inc(1)

	s.sounder.Stop()
	s.persistLocked()

	return s.reminders[index], nil
}

// StopAlarm silences the alarm and clears the active marker without
// touching any reminder state the trigger already set.
func (s *Scheduler) StopAlarm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = ""
	s.sounder.Stop()
}

// Active returns the currently alarming reminder, if any.
func (s *Scheduler) Active() (schema.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID == "" {
		return schema.Reminder{}, false
	}

	index, ok := s.indexOfLocked(s.activeID)
	if !ok {
		return schema.Reminder{}, false
	}
	return s.reminders[index], true
}

// Add creates a reminder with a fresh id and persists the list.
func (s *Scheduler) Add(title, clock string, repeat schema.RepeatMode, days []time.Weekday) (schema.Reminder, error) {
	r := schema.Reminder{
		ID:         uuid.New().String(),
		Title:      title,
		Time:       clock,
		Enabled:    true,
		Repeat:     repeat,
		DaysOfWeek: days,
	}
	if err := r.Validate(); err != nil {
		return schema.Reminder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = append(s.reminders, r)
	s.persistLocked()

	return r, nil
}

// List copies out the reminder collection.
func (s *Scheduler) List() []schema.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]schema.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Toggle flips a reminder's enabled flag, affecting future ticks
// immediately.
func (s *Scheduler) Toggle(id string) (schema.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.indexOfLocked(id)
	if !ok {
		return schema.Reminder{}, ErrReminderNotFound
	}

	s.reminders[index].Enabled = !s.reminders[index].Enabled
	s.persistLocked()

	return s.reminders[index], nil
}

// Delete removes a reminder immediately and irreversibly.
func (s *Scheduler) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.indexOfLocked(id)
	if !ok {
		return ErrReminderNotFound
	}

	if s.activeID == id {
		s.activeID = ""
		s.sounder.Stop()
	}

	s.reminders = append(s.reminders[:index], s.reminders[index+1:]...)
	s.persistLocked()

	return nil
}

func (s *Scheduler) indexOfLocked(id string) (int, bool) {
	for i, r := range s.reminders {
		if r.ID == id {
			return i, true
		}
	}
	return 0, false
}

// persistLocked writes the whole collection. Save failures are logged;
// memory stays authoritative.
func (s *Scheduler) persistLocked() {
	reminders := make([]schema.Reminder, len(s.reminders))
	copy(reminders, s.reminders)

	if err := s.store.SaveReminders(context.Background(), reminders); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("save reminders")
	}
}
