package testutils

import (
	"time"

	"condo-ops-backend/internal/database/models"
	"condo-ops-backend/internal/scheduling"

	"github.com/google/uuid"
)

// ActorFor returns a test actor holding role
func ActorFor(role scheduling.Role) scheduling.Actor {
	return scheduling.Actor{
		ID:   "u-" + string(role) + "-" + uuid.NewString()[:6],
		Name: "Test " + string(role),
		Role: role,
	}
}

// DutyFactory provides methods to create test Duty data
type DutyFactory struct {
	TenantID string
}

// NewDutyFactory creates a new DutyFactory
func NewDutyFactory(tenantID string) *DutyFactory {
	return &DutyFactory{TenantID: tenantID}
}

// Create creates a recurring weekday day-shift duty
func (f *DutyFactory) Create() *models.Duty {
	now := time.Now().UTC()
	return &models.Duty{
		ID:          uuid.NewString(),
		TenantID:    f.TenantID,
		Title:       "Recolher lixo",
		Description: "Levar os sacos da lixeira até a calçada",
		Kind:        models.DutyKindRecurring,
		Shift:       models.ShiftTypeDay,
		Weekdays:    []int{1, 2, 3, 4, 5},
		Active:      true,
		History:     []models.CompletionRecord{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithSchedule sets the shift and weekdays of a recurring duty
func (f *DutyFactory) WithSchedule(shift models.ShiftType, weekdays ...int) *models.Duty {
	duty := f.Create()
	duty.Shift = shift
	duty.Weekdays = weekdays
	return duty
}

// OneOff creates a one-off duty due on dueDate
func (f *DutyFactory) OneOff(dueDate string) *models.Duty {
	duty := f.Create()
	duty.Title = "Trocar lâmpada da garagem"
	duty.Kind = models.DutyKindOneOff
	duty.Weekdays = nil
	duty.DueDate = dueDate
	return duty
}

// ReservationFactory provides methods to create test Reservation data
type ReservationFactory struct {
	TenantID string
}

// NewReservationFactory creates a new ReservationFactory
func NewReservationFactory(tenantID string) *ReservationFactory {
	return &ReservationFactory{TenantID: tenantID}
}

// Create creates a booked barbecue reservation for an afternoon
func (f *ReservationFactory) Create() *models.Reservation {
	now := time.Now().UTC()
	return &models.Reservation{
		ID:        uuid.NewString(),
		TenantID:  f.TenantID,
		Space:     models.SpaceBarbecue,
		Date:      "2024-06-20",
		StartTime: "12:00",
		EndTime:   "18:00",
		BookedBy:  "Ana Souza",
		Unit:      "101",
		Status:    models.ReservationStatusBooked,
		CreatedAt: now,
		CreatedBy: "u-test",
		UpdatedAt: now,
	}
}

// At creates a booked reservation of space on date between start and end
func (f *ReservationFactory) At(space models.SpaceType, date, start, end string) *models.Reservation {
	r := f.Create()
	r.Space = space
	r.Date = date
	r.StartTime = start
	r.EndTime = end
	return r
}

// Completed creates a reservation already marked completed
func (f *ReservationFactory) Completed() *models.Reservation {
	r := f.Create()
	completedAt := r.CreatedAt.Add(time.Hour)
	r.Status = models.ReservationStatusCompleted
	r.CompletedAt = &completedAt
	return r
}

// CleaningDutyFactory provides methods to create test CleaningDuty data
type CleaningDutyFactory struct{}

// NewCleaningDutyFactory creates a new CleaningDutyFactory
func NewCleaningDutyFactory() *CleaningDutyFactory {
	return &CleaningDutyFactory{}
}

// ForReservation derives the pending cleaning duty of r with the default window
func (f *CleaningDutyFactory) ForReservation(r *models.Reservation) *models.CleaningDuty {
	cd, err := scheduling.Spawn(*r, scheduling.DefaultCleaningWindow, time.Now())
	if err != nil {
		panic("testutils: reservation has an invalid date: " + r.Date)
	}
	return &cd
}
