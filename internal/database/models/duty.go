package models

import "time"

// CompletionRecord is proof that a duty was completed on a specific calendar day
type CompletionRecord struct {
	CompletedBy     string    `json:"completed_by"`
	CompletedByName string    `json:"completed_by_name"`
	CompletedAt     time.Time `json:"completed_at"`
	DateKey         string    `json:"date_key"`
	ElapsedNote     string    `json:"elapsed_note,omitempty"`
}

// Duty is a unit of recurring or one-off operational work
type Duty struct {
	ID          string             `json:"id"`
	TenantID    string             `json:"tenant_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Kind        DutyKind           `json:"kind"`
	Shift       ShiftType          `json:"shift"`
	Weekdays    []int              `json:"weekdays"`
	DueDate     string             `json:"due_date"`
	Active      bool               `json:"active"`
	History     []CompletionRecord `json:"history"` // newest first
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
