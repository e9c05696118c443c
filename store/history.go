package store

import (
	"github.com/caremate/companion-api/schema"
)

// SaveTriageRecord logs one symptom check result.
func (s *CompanionStore) SaveTriageRecord(input string, conditions, recommendations []string, severity, advice, source string) (*schema.TriageRecord, error) {
	record := schema.TriageRecord{
		Input:           input,
		Conditions:      conditions,
		Recommendations: recommendations,
		Severity:        severity,
		Advice:          advice,
		Source:          source,
	}

	if err := s.ormDB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListTriageRecords returns the most recent checks, newest first.
func (s *CompanionStore) ListTriageRecords(limit int) ([]schema.TriageRecord, error) {
	records := []schema.TriageRecord{}

	if err := s.ormDB.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
