package scheduling

import (
	"sort"
	"time"

	"condo-ops-backend/internal/database/models"
)

// IsDoneOn reports whether duty has a completion record for dateKey
func IsDoneOn(duty models.Duty, dateKey string) bool {
	for _, rec := range duty.History {
		if rec.DateKey == dateKey {
			return true
		}
	}
	return false
}

// Toggle marks duty done for dateKey, or undoes the completion when one
// already exists. The same call is both "mark done" and "undo". The input
// is not modified; the returned duty carries a fresh history slice.
func Toggle(duty models.Duty, dateKey string, actor Actor, now time.Time) models.Duty {
	history := make([]models.CompletionRecord, 0, len(duty.History)+1)
	removed := false
	for _, rec := range duty.History {
		if rec.DateKey == dateKey {
			removed = true
			continue
		}
		history = append(history, rec)
	}

	if !removed {
		rec := models.CompletionRecord{
			CompletedBy:     actor.ID,
			CompletedByName: actor.DisplayName(),
			CompletedAt:     now.UTC(),
			DateKey:         dateKey,
		}
		history = append([]models.CompletionRecord{rec}, history...)
	}

	duty.History = history
	return duty
}

// PendingCount counts duties due on dateKey that are not done for it
func PendingCount(duties []models.Duty, dateKey string) int {
	n := 0
	for _, d := range duties {
		if IsDueOn(d, dateKey) && !IsDoneOn(d, dateKey) {
			n++
		}
	}
	return n
}

// Completion is a completion record paired with its duty, for history panels
type Completion struct {
	DutyID    string                  `json:"duty_id"`
	DutyTitle string                  `json:"duty_title"`
	Shift     models.ShiftType        `json:"shift"`
	Record    models.CompletionRecord `json:"record"`
}

// CompletionsOn lists every completion counted for dateKey, latest first
func CompletionsOn(duties []models.Duty, dateKey string) []Completion {
	out := make([]Completion, 0)
	for _, d := range duties {
		for _, rec := range d.History {
			if rec.DateKey == dateKey {
				out = append(out, Completion{DutyID: d.ID, DutyTitle: d.Title, Shift: d.Shift, Record: rec})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Record.CompletedAt.Equal(out[j].Record.CompletedAt) {
			return out[i].Record.CompletedAt.After(out[j].Record.CompletedAt)
		}
		return out[i].DutyID < out[j].DutyID
	})
	return out
}

// BoardItem is one due duty on a day's board
type BoardItem struct {
	Duty models.Duty              `json:"duty"`
	Done bool                     `json:"done"`
	By   *models.CompletionRecord `json:"completed_by,omitempty"`
}

// Board is the set of duties due on a day split by shift
type Board struct {
	Date         string           `json:"date"`
	CurrentShift models.ShiftType `json:"current_shift"`
	Day          []BoardItem      `json:"day"`
	Night        []BoardItem      `json:"night"`
	Pending      int              `json:"pending"`
	Done         int              `json:"done"`
}

// BuildBoard computes the board for dateKey from a duty snapshot
func BuildBoard(duties []models.Duty, dateKey string, current models.ShiftType) Board {
	board := Board{Date: dateKey, CurrentShift: current, Day: []BoardItem{}, Night: []BoardItem{}}
	for _, d := range DueOn(duties, dateKey) {
		item := BoardItem{Duty: d}
		for i := range d.History {
			if d.History[i].DateKey == dateKey {
				rec := d.History[i]
				item.Done = true
				item.By = &rec
				break
			}
		}
		if item.Done {
			board.Done++
		} else {
			board.Pending++
		}
		if d.Shift == models.ShiftTypeNight {
			board.Night = append(board.Night, item)
		} else {
			board.Day = append(board.Day, item)
		}
	}
	return board
}
