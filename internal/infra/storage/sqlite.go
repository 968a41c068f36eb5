package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"ledger_go/internal/event"
)

// ArchivedEvent is the persisted row for one exported event projection.
type ArchivedEvent struct {
	Position   int64     `gorm:"primaryKey;autoIncrement" json:"position"`
	EventID    string    `gorm:"uniqueIndex" json:"event_id"`
	Type       string    `gorm:"index" json:"type"`
	OccurredOn time.Time `json:"occurred_on"`
	Payload    string    `json:"payload"`
}

// Archive exports event projections into a local SQLite file. It is a
// write-only sink for inspection after a session; the in-memory store
// stays the only source of truth and is never read back from here.
type Archive struct {
	db *gorm.DB
}

// NewArchive opens (or creates) the archive database at path.
func NewArchive(path string) (*Archive, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Pure Go SQLite
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	if err := db.AutoMigrate(&ArchivedEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate archive database: %w", err)
	}

	return &Archive{db: db}, nil
}

// Export appends the canonical projections of the given events, in order.
// Events already archived (same event id) are skipped, so re-exporting a
// grown log is safe.
func (a *Archive) Export(events []event.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(event.ToMap(e))
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.EventID(), err)
		}

		row := &ArchivedEvent{
			EventID:    e.EventID().String(),
			Type:       e.EventType(),
			OccurredOn: e.OccurredOn(),
			Payload:    string(payload),
		}

		err = a.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).Create(row).Error
		if err != nil {
			return fmt.Errorf("failed to archive event %s: %w", row.EventID, err)
		}
	}
	return nil
}

// Count returns the number of archived events.
func (a *Archive) Count() (int64, error) {
	var n int64
	err := a.db.Model(&ArchivedEvent{}).Count(&n).Error
	return n, err
}

// Events returns all archived rows in export order.
func (a *Archive) Events() ([]ArchivedEvent, error) {
	var rows []ArchivedEvent
	err := a.db.Order("position").Find(&rows).Error
	return rows, err
}
