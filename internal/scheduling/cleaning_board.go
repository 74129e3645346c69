package scheduling

import (
	"sort"
	"strings"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
)

// CleaningBoard evaluates the cleaning duty lifecycle over one snapshot
type CleaningBoard struct {
	duties []models.CleaningDuty
}

// NewCleaningBoard creates a board over a snapshot of cleaning duties
func NewCleaningBoard(duties []models.CleaningDuty) *CleaningBoard {
	return &CleaningBoard{duties: append([]models.CleaningDuty(nil), duties...)}
}

// Get returns a cleaning duty by id
func (b *CleaningBoard) Get(id string) (models.CleaningDuty, error) {
	for _, d := range b.duties {
		if d.ID == id {
			return d, nil
		}
	}
	return models.CleaningDuty{}, apperrors.ErrCleaningDutyNotFound
}

// ForReservation returns the duty derived from a reservation, if any
func (b *CleaningBoard) ForReservation(reservationID string) *models.CleaningDuty {
	for _, d := range b.duties {
		if d.ReservationID == reservationID {
			cd := d
			return &cd
		}
	}
	return nil
}

// Pending lists pending duties matching filter, earliest scheduled first
func (b *CleaningBoard) Pending(filter string) []models.CleaningDuty {
	out := make([]models.CleaningDuty, 0)
	for _, d := range b.duties {
		if d.Status == models.CleaningStatusPending && matchesFilter(d, filter) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.ScheduledDate != c.ScheduledDate {
			return a.ScheduledDate < c.ScheduledDate
		}
		if a.StartTime != c.StartTime {
			return a.StartTime < c.StartTime
		}
		return a.ID < c.ID
	})
	return out
}

// Finish marks a pending duty done
func (b *CleaningBoard) Finish(id string, actor Actor, now time.Time) (models.CleaningDuty, error) {
	d, err := b.Get(id)
	if err != nil {
		return models.CleaningDuty{}, err
	}
	if d.Status != models.CleaningStatusPending {
		return models.CleaningDuty{}, apperrors.NewInvalidTransitionError("cleaning duty", id, string(d.Status), "finish")
	}
	finishedAt := now.UTC()
	d.Status = models.CleaningStatusDone
	d.FinishedAt = &finishedAt
	d.FinishedBy = actor.DisplayName()
	return d, nil
}

// AssignCrew sets the crew of a pending duty
func (b *CleaningBoard) AssignCrew(id, crew string) (models.CleaningDuty, error) {
	d, err := b.Get(id)
	if err != nil {
		return models.CleaningDuty{}, err
	}
	if d.Status != models.CleaningStatusPending {
		return models.CleaningDuty{}, apperrors.NewInvalidTransitionError("cleaning duty", id, string(d.Status), "assign crew to")
	}
	crew = strings.TrimSpace(crew)
	if crew == "" {
		return models.CleaningDuty{}, apperrors.NewValidationError("crew", "is required")
	}
	d.Crew = crew
	return d, nil
}

// HistoryForMonth lists done duties scheduled in the YYYY-MM month, newest first
func (b *CleaningBoard) HistoryForMonth(yearMonth, filter string) ([]models.CleaningDuty, error) {
	if !ValidYearMonth(yearMonth) {
		return nil, apperrors.NewValidationError("month", apperrors.ErrInvalidYearMonth.Error())
	}
	out := make([]models.CleaningDuty, 0)
	for _, d := range b.duties {
		if d.Status == models.CleaningStatusDone && MonthOf(d.ScheduledDate) == yearMonth && matchesFilter(d, filter) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.ScheduledDate != c.ScheduledDate {
			return a.ScheduledDate > c.ScheduledDate
		}
		af, cf := finishedAt(a), finishedAt(c)
		if !af.Equal(cf) {
			return af.After(cf)
		}
		return a.ID < c.ID
	})
	return out, nil
}

func finishedAt(d models.CleaningDuty) time.Time {
	if d.FinishedAt == nil {
		return time.Time{}
	}
	return *d.FinishedAt
}

// CleaningStats summarizes a month of cleaning history
type CleaningStats struct {
	Total             int                      `json:"total"`
	MostFrequentSpace *models.SpaceType        `json:"most_frequent_space"`
	BySpace           map[models.SpaceType]int `json:"by_space"`
}

// MonthlyStats counts history by space. Ties for the most frequent space go
// to the space seen first in history order.
func MonthlyStats(history []models.CleaningDuty) CleaningStats {
	stats := CleaningStats{Total: len(history), BySpace: map[models.SpaceType]int{}}
	order := make([]models.SpaceType, 0)
	for _, d := range history {
		if _, seen := stats.BySpace[d.Space]; !seen {
			order = append(order, d.Space)
		}
		stats.BySpace[d.Space]++
	}

	best := 0
	for _, space := range order {
		if n := stats.BySpace[space]; n > best {
			best = n
			s := space
			stats.MostFrequentSpace = &s
		}
	}
	return stats
}

// matchesFilter does a case-insensitive match of filter against space and crew
func matchesFilter(d models.CleaningDuty, filter string) bool {
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(d.Space)), q) ||
		strings.Contains(strings.ToLower(d.Space.Label()), q) ||
		strings.Contains(strings.ToLower(d.Crew), q)
}
