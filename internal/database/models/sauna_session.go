package models

import "time"

// SaunaSession is a walk-in use of a sauna logged by staff. An active
// session holds its sauna until it is finished; done is terminal.
type SaunaSession struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenant_id"`
	Space        SpaceType          `json:"space"`
	ResidentName string             `json:"resident_name"`
	Unit         string             `json:"unit"`
	Status       SaunaSessionStatus `json:"status"`
	StartedAt    time.Time          `json:"started_at"`
	StartedBy    string             `json:"started_by"`
	EndedAt      *time.Time         `json:"ended_at,omitempty"`
	EndedBy      string             `json:"ended_by,omitempty"`
}
