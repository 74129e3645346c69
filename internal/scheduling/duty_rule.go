package scheduling

import (
	"sort"
	"strings"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
)

// Day shift covers local hours [DayShiftStartHour, DayShiftEndHour)
const (
	DayShiftStartHour = 7
	DayShiftEndHour   = 19
)

// IsDueOn reports whether duty is due on the calendar day date.
// Inactive duties, unknown kinds, malformed dates and out-of-range weekdays
// are never due.
func IsDueOn(duty models.Duty, date string) bool {
	if !duty.Active {
		return false
	}
	switch duty.Kind {
	case models.DutyKindRecurring:
		d, err := ParseDate(date)
		if err != nil {
			return false
		}
		weekday := int(d.Weekday())
		for _, w := range duty.Weekdays {
			if w >= 0 && w <= 6 && w == weekday {
				return true
			}
		}
		return false
	case models.DutyKindOneOff:
		return duty.DueDate != "" && duty.DueDate == date
	default:
		return false
	}
}

// ShiftAt returns the shift running at instant in the tenant's local time
func ShiftAt(instant time.Time, loc *time.Location) models.ShiftType {
	if loc == nil {
		loc = time.UTC
	}
	hour := instant.In(loc).Hour()
	if hour >= DayShiftStartHour && hour < DayShiftEndHour {
		return models.ShiftTypeDay
	}
	return models.ShiftTypeNight
}

// DueOn filters duties due on date, ordered by shift (day first), title and id
func DueOn(duties []models.Duty, date string) []models.Duty {
	due := make([]models.Duty, 0, len(duties))
	for _, d := range duties {
		if IsDueOn(d, date) {
			due = append(due, d)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Shift != b.Shift {
			return a.Shift == models.ShiftTypeDay
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
	return due
}

// NormalizeDuty upper-cases the title and sorts and dedupes weekdays
func NormalizeDuty(d models.Duty) models.Duty {
	d.Title = strings.ToUpper(strings.TrimSpace(d.Title))
	d.Description = strings.TrimSpace(d.Description)
	if len(d.Weekdays) > 0 {
		seen := make(map[int]bool, len(d.Weekdays))
		days := make([]int, 0, len(d.Weekdays))
		for _, w := range d.Weekdays {
			if !seen[w] {
				seen[w] = true
				days = append(days, w)
			}
		}
		sort.Ints(days)
		d.Weekdays = days
	}
	return d
}

// ValidateDuty checks that exactly one of weekdays or due date is populated, matching kind
func ValidateDuty(d models.Duty) error {
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.NewValidationError("title", "is required")
	}
	if !d.Shift.IsValid() {
		return apperrors.NewValidationError("shift", apperrors.ErrInvalidShift.Error())
	}
	switch d.Kind {
	case models.DutyKindRecurring:
		if d.DueDate != "" {
			return apperrors.NewValidationError("due_date", "must be empty for recurring duties")
		}
		if len(d.Weekdays) == 0 {
			return apperrors.NewValidationError("weekdays", apperrors.ErrInvalidWeekdays.Error())
		}
		for _, w := range d.Weekdays {
			if w < 0 || w > 6 {
				return apperrors.NewValidationError("weekdays", apperrors.ErrInvalidWeekdays.Error())
			}
		}
	case models.DutyKindOneOff:
		if len(d.Weekdays) > 0 {
			return apperrors.NewValidationError("weekdays", "must be empty for one-off duties")
		}
		if _, err := ParseDate(d.DueDate); err != nil {
			return apperrors.NewValidationError("due_date", apperrors.ErrInvalidDateKey.Error())
		}
	default:
		return apperrors.NewValidationError("kind", apperrors.ErrInvalidDutyKind.Error())
	}
	return nil
}
