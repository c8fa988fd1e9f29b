// Package models defines the GORM-mapped catalog and trade tables.
package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"brokerfolio/internal/uuid"
)

// Base carries the UUID key, timestamps and soft-delete marker shared by every table.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggertype:"string"`
}

// BeforeCreate assigns a UUIDv7 when the row has no ID and rejects
// caller-supplied IDs that are not UUIDs.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
		return nil
	}
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return fmt.Errorf("invalid primary key %q: %w", b.ID, err)
	}
	b.ID = id
	return nil
}
