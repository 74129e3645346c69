package models

import "time"

// Reservation is a booking of a shared space for a time window on a date
type Reservation struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	Space       SpaceType         `json:"space"`
	Date        string            `json:"date"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	BookedBy    string            `json:"booked_by"`
	Unit        string            `json:"unit"`
	Note        string            `json:"note"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CreatedBy   string            `json:"created_by"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CanceledAt  *time.Time        `json:"canceled_at,omitempty"`
}
