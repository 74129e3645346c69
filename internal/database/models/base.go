package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection names of the tenant-scoped document store
const (
	CollectionDuties         = "duties"
	CollectionReservations   = "reservations"
	CollectionCleaningDuties = "cleaning_duties"
	CollectionSaunaSessions  = "sauna_sessions"
)

// Document is a flat, tenant-scoped record keyed by an opaque string id.
// The store performs no schema enforcement on Body.
type Document struct {
	ID         string          `json:"id" gorm:"type:varchar(64);primaryKey"`
	TenantID   string          `json:"tenant_id" gorm:"type:varchar(64);not null;index:idx_documents_tenant_collection,priority:1"`
	Collection string          `json:"collection" gorm:"type:varchar(64);not null;index:idx_documents_tenant_collection,priority:2"`
	Body       json.RawMessage `json:"body" gorm:"type:jsonb;not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// BeforeCreate sets the ID if not already set
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if len(d.Body) == 0 {
		d.Body = json.RawMessage(`{}`)
	}
	return nil
}
