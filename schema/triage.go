package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TriageRecord logs one symptom check. Kept so the user can review past
// checks from the history page.
type TriageRecord struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Input           string         `json:"input"`
	Conditions      pq.StringArray `json:"conditions" gorm:"type:text[]"`
	Recommendations pq.StringArray `json:"recommendations" gorm:"type:text[]"`
	Severity        string         `json:"severity"`
	Advice          string         `json:"advice"`
	Source          string         `json:"source"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (TriageRecord) TableName() string {
	return "triage_records"
}
