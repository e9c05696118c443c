package store

import (
	"github.com/jinzhu/gorm"

	"github.com/caremate/companion-api/schema"
)

// companion main datastore
type CompanionCore interface {
	Ping() error

	// Triage history
	SaveTriageRecord(input string, conditions, recommendations []string, severity, advice, source string) (*schema.TriageRecord, error)
	ListTriageRecords(limit int) ([]schema.TriageRecord, error)
}

// CompanionStore is an implementation of CompanionCore
type CompanionStore struct {
	ormDB *gorm.DB
}

func NewCompanionStore(ormDB *gorm.DB) *CompanionStore {
	return &CompanionStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CompanionStore) Ping() error {
	return s.ormDB.DB().Ping()
}
