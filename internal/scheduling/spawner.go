package scheduling

import (
	"strings"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"

	"github.com/google/uuid"
)

// cleaningNamespace seeds the name-based ids of derived cleaning duties
var cleaningNamespace = uuid.MustParse("5b0c2f1e-8f57-4b8e-9a52-4c7c3d6f1a10")

// CleaningWindow is the wall-clock window a cleaning is scheduled for
type CleaningWindow struct {
	Start string
	End   string
}

// DefaultCleaningWindow is used when no window is configured
var DefaultCleaningWindow = CleaningWindow{Start: "08:00", End: "10:00"}

// Validate checks that both ends are HH:MM and start is before end
func (w CleaningWindow) Validate() error {
	start, err := ClockMinutes(w.Start)
	if err != nil {
		return apperrors.NewValidationError("start_time", apperrors.ErrInvalidClockTime.Error())
	}
	end, err := ClockMinutes(w.End)
	if err != nil {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidClockTime.Error())
	}
	if start >= end {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidTimeRange.Error())
	}
	return nil
}

// withDefaults fills each empty end from DefaultCleaningWindow
func (w CleaningWindow) withDefaults() CleaningWindow {
	if strings.TrimSpace(w.Start) == "" {
		w.Start = DefaultCleaningWindow.Start
	}
	if strings.TrimSpace(w.End) == "" {
		w.End = DefaultCleaningWindow.End
	}
	return w
}

// CleaningDutyID returns the id of the cleaning duty derived from a reservation.
// The same reservation always yields the same id.
func CleaningDutyID(reservationID string) string {
	return uuid.NewSHA1(cleaningNamespace, []byte(reservationID)).String()
}

// Spawn derives the pending cleaning duty for a reservation, scheduled the
// calendar day after the reservation's date with an empty crew.
func Spawn(r models.Reservation, window CleaningWindow, now time.Time) (models.CleaningDuty, error) {
	scheduled, err := NextDay(r.Date)
	if err != nil {
		return models.CleaningDuty{}, apperrors.NewValidationError("date", apperrors.ErrInvalidDateKey.Error())
	}
	window = window.withDefaults()
	if err := window.Validate(); err != nil {
		return models.CleaningDuty{}, err
	}

	return models.CleaningDuty{
		ID:                    CleaningDutyID(r.ID),
		TenantID:              r.TenantID,
		ReservationID:         r.ID,
		Space:                 r.Space,
		SourceReservationDate: r.Date,
		ScheduledDate:         scheduled,
		Status:                models.CleaningStatusPending,
		OriginBookedBy:        r.BookedBy,
		OriginUnit:            r.Unit,
		StartTime:             window.Start,
		EndTime:               window.End,
		CreatedAt:             now.UTC(),
	}, nil
}

// CleaningPlan carries operator input given when a reservation is completed
type CleaningPlan struct {
	Crew      string
	StartTime string
	EndTime   string
	Note      string
}

// ApplyPlan fills crew, window and note of a freshly spawned duty. Empty
// plan fields keep the spawned defaults.
func ApplyPlan(cd models.CleaningDuty, plan CleaningPlan) (models.CleaningDuty, error) {
	window := CleaningWindow{Start: cd.StartTime, End: cd.EndTime}
	if s := strings.TrimSpace(plan.StartTime); s != "" {
		window.Start = s
	}
	if e := strings.TrimSpace(plan.EndTime); e != "" {
		window.End = e
	}
	if err := window.Validate(); err != nil {
		return models.CleaningDuty{}, err
	}

	cd.Crew = strings.TrimSpace(plan.Crew)
	cd.StartTime = window.Start
	cd.EndTime = window.End
	cd.Note = strings.TrimSpace(plan.Note)
	return cd, nil
}
