package scheduling

import (
	"sort"
	"strings"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
)

// DefaultPreparingLookahead is how far ahead an upcoming booking puts a space into preparation
const DefaultPreparingLookahead = 2 * time.Hour

// OccupancyState is the state of a space at an instant
type OccupancyState string

const (
	Vacant    OccupancyState = "vacant"
	Occupied  OccupancyState = "occupied"
	Preparing OccupancyState = "preparing"
)

// Occupancy is the result of OccupancyAt. Reservation is nil when Vacant.
// Session is set instead when a walk-in sauna session holds the space.
type Occupancy struct {
	State       OccupancyState       `json:"state"`
	Reservation *models.Reservation  `json:"reservation,omitempty"`
	Session     *models.SaunaSession `json:"session,omitempty"`
}

// ReservationPayload carries the operator-editable fields of a reservation
type ReservationPayload struct {
	Space     models.SpaceType
	Date      string
	StartTime string
	EndTime   string
	BookedBy  string
	Unit      string
	Note      string
	// Override allows a second active booking of the same space and day
	Override bool
}

// ReservationBook evaluates reservation rules over one snapshot of a tenant's reservations
type ReservationBook struct {
	reservations []models.Reservation
	loc          *time.Location
	lookahead    time.Duration
}

// NewReservationBook creates a book over reservations. Times are interpreted in loc.
func NewReservationBook(reservations []models.Reservation, loc *time.Location, lookahead time.Duration) *ReservationBook {
	if loc == nil {
		loc = time.UTC
	}
	if lookahead <= 0 {
		lookahead = DefaultPreparingLookahead
	}
	sorted := append([]models.Reservation(nil), reservations...)
	sort.SliceStable(sorted, func(i, j int) bool { return reservationLess(sorted[i], sorted[j]) })
	return &ReservationBook{reservations: sorted, loc: loc, lookahead: lookahead}
}

// reservationLess orders by date, start time, creation time and id
func reservationLess(a, b models.Reservation) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// All returns every reservation in book order
func (b *ReservationBook) All() []models.Reservation {
	return append([]models.Reservation(nil), b.reservations...)
}

// Get returns a reservation by id
func (b *ReservationBook) Get(id string) (models.Reservation, error) {
	for _, r := range b.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, apperrors.ErrReservationNotFound
}

func (b *ReservationBook) window(r models.Reservation) (time.Time, time.Time, bool) {
	start, err := At(r.Date, r.StartTime, b.loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := At(r.Date, r.EndTime, b.loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// active lists non-canceled reservations of space in book order
func (b *ReservationBook) active(space models.SpaceType) []models.Reservation {
	out := make([]models.Reservation, 0)
	for _, r := range b.reservations {
		if r.Space == space && r.Status != models.ReservationStatusCanceled {
			out = append(out, r)
		}
	}
	return out
}

// OccupancyAt reports whether space is occupied at instant, being prepared
// for a booking starting within the lookahead, or vacant.
func (b *ReservationBook) OccupancyAt(space models.SpaceType, instant time.Time) Occupancy {
	day := DateKeyAt(instant, b.loc)

	var upcoming *models.Reservation
	var upcomingStart time.Time
	for _, r := range b.active(space) {
		if r.Date != day {
			continue
		}
		start, end, ok := b.window(r)
		if !ok {
			continue
		}
		if !instant.Before(start) && instant.Before(end) {
			res := r
			return Occupancy{State: Occupied, Reservation: &res}
		}
		if start.After(instant) && (upcoming == nil || start.Before(upcomingStart)) {
			res := r
			upcoming = &res
			upcomingStart = start
		}
	}

	if upcoming != nil && upcomingStart.Sub(instant) <= b.lookahead {
		return Occupancy{State: Preparing, Reservation: upcoming}
	}
	return Occupancy{State: Vacant}
}

// PreviousReservation returns the latest active booking of space that ended at or before instant
func (b *ReservationBook) PreviousReservation(space models.SpaceType, instant time.Time) *models.Reservation {
	var prev *models.Reservation
	for _, r := range b.active(space) {
		_, end, ok := b.window(r)
		if !ok {
			continue
		}
		if !end.After(instant) {
			res := r
			prev = &res
		}
	}
	return prev
}

// NextReservation returns the earliest active booking of space starting at or after instant
func (b *ReservationBook) NextReservation(space models.SpaceType, instant time.Time) *models.Reservation {
	for _, r := range b.active(space) {
		start, _, ok := b.window(r)
		if !ok {
			continue
		}
		if !start.Before(instant) {
			res := r
			return &res
		}
	}
	return nil
}

// ForDate returns every reservation on date in book order
func (b *ReservationBook) ForDate(date string) []models.Reservation {
	out := make([]models.Reservation, 0)
	for _, r := range b.reservations {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// ForMonth returns every reservation in the YYYY-MM month in book order
func (b *ReservationBook) ForMonth(yearMonth string) ([]models.Reservation, error) {
	if !ValidYearMonth(yearMonth) {
		return nil, apperrors.NewValidationError("month", apperrors.ErrInvalidYearMonth.Error())
	}
	out := make([]models.Reservation, 0)
	for _, r := range b.reservations {
		if MonthOf(r.Date) == yearMonth {
			out = append(out, r)
		}
	}
	return out, nil
}

// conflict returns the first active booking of space on date other than exceptID
func (b *ReservationBook) conflict(space models.SpaceType, date, exceptID string) *models.Reservation {
	for _, r := range b.active(space) {
		if r.Date == date && r.ID != exceptID {
			res := r
			return &res
		}
	}
	return nil
}

// Create validates payload and returns a new booked reservation without an id
func (b *ReservationBook) Create(p ReservationPayload, actor Actor, now time.Time) (models.Reservation, error) {
	p = normalizePayload(p)
	if err := validatePayload(p); err != nil {
		return models.Reservation{}, err
	}
	if !p.Override {
		if existing := b.conflict(p.Space, p.Date, ""); existing != nil {
			return models.Reservation{}, apperrors.NewConflictError(string(p.Space), p.Date, existing.ID)
		}
	}

	now = now.UTC()
	return models.Reservation{
		Space:     p.Space,
		Date:      p.Date,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		BookedBy:  p.BookedBy,
		Unit:      p.Unit,
		Note:      p.Note,
		Status:    models.ReservationStatusBooked,
		CreatedAt: now,
		CreatedBy: actor.ID,
		UpdatedAt: now,
	}, nil
}

// Update applies payload to a booked reservation
func (b *ReservationBook) Update(id string, p ReservationPayload, now time.Time) (models.Reservation, error) {
	r, err := b.Get(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if r.Status != models.ReservationStatusBooked {
		return models.Reservation{}, apperrors.NewInvalidTransitionError("reservation", id, string(r.Status), "update")
	}
	p = normalizePayload(p)
	if err := validatePayload(p); err != nil {
		return models.Reservation{}, err
	}
	if !p.Override {
		if existing := b.conflict(p.Space, p.Date, id); existing != nil {
			return models.Reservation{}, apperrors.NewConflictError(string(p.Space), p.Date, existing.ID)
		}
	}

	r.Space = p.Space
	r.Date = p.Date
	r.StartTime = p.StartTime
	r.EndTime = p.EndTime
	r.BookedBy = p.BookedBy
	r.Unit = p.Unit
	r.Note = p.Note
	r.UpdatedAt = now.UTC()
	return r, nil
}

// Complete moves a booked reservation to completed and derives its cleaning duty
func (b *ReservationBook) Complete(id string, window CleaningWindow, now time.Time) (models.Reservation, models.CleaningDuty, error) {
	r, err := b.Get(id)
	if err != nil {
		return models.Reservation{}, models.CleaningDuty{}, err
	}
	if r.Status != models.ReservationStatusBooked {
		return models.Reservation{}, models.CleaningDuty{}, apperrors.NewInvalidTransitionError("reservation", id, string(r.Status), "complete")
	}

	completedAt := now.UTC()
	r.Status = models.ReservationStatusCompleted
	r.CompletedAt = &completedAt
	r.UpdatedAt = completedAt

	cleaning, err := Spawn(r, window, now)
	if err != nil {
		return models.Reservation{}, models.CleaningDuty{}, err
	}
	return r, cleaning, nil
}

// Cancel moves a booked reservation to canceled
func (b *ReservationBook) Cancel(id string, now time.Time) (models.Reservation, error) {
	r, err := b.Get(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if r.Status != models.ReservationStatusBooked {
		return models.Reservation{}, apperrors.NewInvalidTransitionError("reservation", id, string(r.Status), "cancel")
	}
	canceledAt := now.UTC()
	r.Status = models.ReservationStatusCanceled
	r.CanceledAt = &canceledAt
	r.UpdatedAt = canceledAt
	return r, nil
}

// Delete checks that the reservation exists. Deletion is allowed in any
// state and never touches derived cleaning duties.
func (b *ReservationBook) Delete(id string) error {
	_, err := b.Get(id)
	return err
}

func normalizePayload(p ReservationPayload) ReservationPayload {
	p.Date = strings.TrimSpace(p.Date)
	p.StartTime = strings.TrimSpace(p.StartTime)
	p.EndTime = strings.TrimSpace(p.EndTime)
	p.BookedBy = strings.TrimSpace(p.BookedBy)
	p.Unit = strings.TrimSpace(p.Unit)
	p.Note = strings.TrimSpace(p.Note)
	return p
}

func validatePayload(p ReservationPayload) error {
	if !p.Space.IsValid() {
		return apperrors.NewValidationError("space", apperrors.ErrInvalidSpace.Error())
	}
	if _, err := ParseDate(p.Date); err != nil {
		return apperrors.NewValidationError("date", apperrors.ErrInvalidDateKey.Error())
	}
	start, err := ClockMinutes(p.StartTime)
	if err != nil {
		return apperrors.NewValidationError("start_time", apperrors.ErrInvalidClockTime.Error())
	}
	end, err := ClockMinutes(p.EndTime)
	if err != nil {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidClockTime.Error())
	}
	if start >= end {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidTimeRange.Error())
	}
	if p.BookedBy == "" {
		return apperrors.NewValidationError("booked_by", "is required")
	}
	if p.Unit == "" {
		return apperrors.NewValidationError("unit", "is required")
	}
	return nil
}
