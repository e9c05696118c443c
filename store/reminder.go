package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caremate/companion-api/schema"
)

// ReminderState persists the reminder collection as one serialized array
// under a fixed key.
type ReminderState interface {
	LoadReminders(ctx context.Context) ([]schema.Reminder, error)
	SaveReminders(ctx context.Context, reminders []schema.Reminder) error
}

type reminderStateDocument struct {
	Key       string            `bson:"_id"`
	Reminders []schema.Reminder `bson:"reminders"`
}

// LoadReminders rehydrates the persisted reminder array. Malformed data is
// discarded wholesale: if any element fails shape validation the whole
// collection is dropped and an empty list returned. There is no partial
// recovery.
func (m *mongoDB) LoadReminders(ctx context.Context) ([]schema.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reminderStateDocument
	err := m.client.Database(m.database).Collection(schema.ReminderCollection).FindOne(ctx, bson.M{
		"_id": schema.ReminderStateKey,
	}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	if valid := ValidReminders(doc.Reminders); !valid {
		log.WithField("prefix", mongoLogPrefix).Warn("discarding malformed reminder state")
		return nil, nil
	}

	return doc.Reminders, nil
}

// SaveReminders writes the whole collection in one replace.
func (m *mongoDB) SaveReminders(ctx context.Context, reminders []schema.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.client.Database(m.database).Collection(schema.ReminderCollection).ReplaceOne(ctx,
		bson.M{"_id": schema.ReminderStateKey},
		reminderStateDocument{
			Key:       schema.ReminderStateKey,
			Reminders: reminders,
		},
		options.Replace().SetUpsert(true),
	)
	return err
}

// ValidReminders reports whether every element of a rehydrated collection
// passes shape validation. One bad element fails the whole set.
func ValidReminders(reminders []schema.Reminder) bool {
	for _, r := range reminders {
		if err := r.Validate(); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"id":     r.ID,
				"error":  err,
			}).Warn("invalid persisted reminder")
			return false
		}
	}
	return true
}
