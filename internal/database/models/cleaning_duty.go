package models

import "time"

// CleaningDuty is maintenance work derived from a completed reservation.
// ReservationID is the owning relation; Space and SourceReservationDate are copies.
type CleaningDuty struct {
	ID                    string         `json:"id"`
	TenantID              string         `json:"tenant_id"`
	ReservationID         string         `json:"reservation_id"`
	Space                 SpaceType      `json:"space"`
	SourceReservationDate string         `json:"source_reservation_date"`
	ScheduledDate         string         `json:"scheduled_date"`
	Status                CleaningStatus `json:"status"`
	OriginBookedBy        string         `json:"origin_booked_by"`
	OriginUnit            string         `json:"origin_unit"`
	Crew                  string         `json:"crew"`
	StartTime             string         `json:"start_time"`
	EndTime               string         `json:"end_time"`
	Note                  string         `json:"note"`
	CreatedAt             time.Time      `json:"created_at"`
	FinishedAt            *time.Time     `json:"finished_at,omitempty"`
	FinishedBy            string         `json:"finished_by,omitempty"`
}
