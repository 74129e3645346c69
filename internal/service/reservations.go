package service

import (
	"context"
	"fmt"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/store"

	"github.com/google/uuid"
)

// ReservationRequest represents the request to create or update a reservation
type ReservationRequest struct {
	Space     models.SpaceType `json:"space" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	StartTime string           `json:"start_time" validate:"required"`
	EndTime   string           `json:"end_time" validate:"required"`
	BookedBy  string           `json:"booked_by" validate:"required,max=120"`
	Unit      string           `json:"unit" validate:"required,max=20"`
	Note      string           `json:"note,omitempty" validate:"max=500"`
	Override  bool             `json:"override,omitempty"`
}

// CompleteReservationRequest carries the cleaning plan given at completion
type CompleteReservationRequest struct {
	Crew      string `json:"crew,omitempty" validate:"max=120"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Note      string `json:"note,omitempty" validate:"max=500"`
}

// CompletionResponse is a completed reservation and the cleaning duty derived from it
type CompletionResponse struct {
	Reservation  models.Reservation  `json:"reservation"`
	CleaningDuty models.CleaningDuty `json:"cleaning_duty"`
}

// SpaceStatusResponse is the occupancy of a space at an instant with its neighbours
type SpaceStatusResponse struct {
	Space     models.SpaceType     `json:"space"`
	Label     string               `json:"label"`
	At        time.Time            `json:"at"`
	Occupancy scheduling.Occupancy `json:"occupancy"`
	Previous  *models.Reservation  `json:"previous,omitempty"`
	Next      *models.Reservation  `json:"next,omitempty"`
	Cleaning  *models.CleaningDuty `json:"pending_cleaning,omitempty"`
}

// ReconcileResponse reports what ReconcileDerivations repaired
type ReconcileResponse struct {
	TenantID string   `json:"tenant_id"`
	Checked  int      `json:"checked"`
	Created  []string `json:"created"`
}

func (r *ReservationRequest) payload(actor scheduling.Actor) scheduling.ReservationPayload {
	return scheduling.ReservationPayload{
		Space:     r.Space,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		BookedBy:  r.BookedBy,
		Unit:      r.Unit,
		Note:      r.Note,
		// only managers may double-book a space
		Override: r.Override && actor.Can(scheduling.CapOverrideReservations),
	}
}

// ReservationsForMonth lists the reservations of a YYYY-MM month. An empty
// month means the current one.
func (s *SchedulingService) ReservationsForMonth(ctx context.Context, tenantID, yearMonth string) ([]models.Reservation, error) {
	if yearMonth == "" {
		yearMonth = scheduling.MonthOf(s.today())
	}
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.book(st.Reservations).ForMonth(yearMonth)
}

// CreateReservation books a space for a day
func (s *SchedulingService) CreateReservation(ctx context.Context, tenantID string, actor scheduling.Actor, req *ReservationRequest) (*models.Reservation, error) {
	if err := authorize(actor, scheduling.CapBookReservations); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}

	r, err := s.book(reservations).Create(req.payload(actor), actor, s.now())
	if err != nil {
		return nil, err
	}
	r.ID = uuid.NewString()
	r.TenantID = tenantID

	doc, err := store.Encode(tenantID, r)
	if err != nil {
		return nil, err
	}
	doc.ID = r.ID
	if _, err := s.store.Create(ctx, models.CollectionReservations, doc); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"reservation_id": r.ID,
		"space":          r.Space,
		"date":           r.Date,
		"override":       req.Override,
	}).Info("Reservation created")
	return &r, nil
}

// UpdateReservation edits a booked reservation
func (s *SchedulingService) UpdateReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *ReservationRequest) (*models.Reservation, error) {
	if err := authorize(actor, scheduling.CapBookReservations); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	book := s.book(reservations)
	if err := ownsReservation(book, actor, id); err != nil {
		return nil, err
	}

	r, err := book.Update(id, req.payload(actor), s.now())
	if err != nil {
		return nil, err
	}
	patch := map[string]interface{}{
		"space":      r.Space,
		"date":       r.Date,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
		"booked_by":  r.BookedBy,
		"unit":       r.Unit,
		"note":       r.Note,
		"updated_at": r.UpdatedAt,
	}
	if err := s.store.Update(ctx, models.CollectionReservations, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrReservationNotFound)
	}

	s.log(ctx, tenantID, actor).WithField("reservation_id", id).Info("Reservation updated")
	return &r, nil
}

// CompleteReservation closes a booked reservation and derives its cleaning
// duty for the next day. With a transactional store both writes commit
// together; otherwise a failure of the second write is reported as a
// DerivationError and repaired by ReconcileDerivations.
func (s *SchedulingService) CompleteReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *CompleteReservationRequest) (*CompletionResponse, error) {
	if err := authorize(actor, scheduling.CapCompleteReservations); err != nil {
		return nil, err
	}
	if req == nil {
		req = &CompleteReservationRequest{}
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}

	r, cleaning, err := s.book(reservations).Complete(id, s.window, s.now())
	if err != nil {
		return nil, err
	}
	cleaning, err = scheduling.ApplyPlan(cleaning, scheduling.CleaningPlan{
		Crew:      req.Crew,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	})
	if err != nil {
		return nil, err
	}
	cleaning.TenantID = tenantID

	patch := map[string]interface{}{
		"status":       r.Status,
		"completed_at": r.CompletedAt,
		"updated_at":   r.UpdatedAt,
	}
	doc, err := store.Encode(tenantID, cleaning)
	if err != nil {
		return nil, err
	}
	doc.ID = cleaning.ID

	log := s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"reservation_id":   r.ID,
		"cleaning_duty_id": cleaning.ID,
	})

	if tx, ok := s.store.(store.Transactor); ok {
		err := tx.Atomic(ctx, func(w store.Writer) error {
			if err := w.Update(ctx, models.CollectionReservations, id, patch); err != nil {
				return storeErr(err, apperrors.ErrReservationNotFound)
			}
			return createCleaning(ctx, w, doc)
		})
		if err != nil {
			return nil, err
		}
		log.Info("Reservation completed")
		return &CompletionResponse{Reservation: r, CleaningDuty: cleaning}, nil
	}

	if err := s.store.Update(ctx, models.CollectionReservations, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrReservationNotFound)
	}
	if err := createCleaning(ctx, s.store, doc); err != nil {
		log.WithError(err).Error("Reservation completed but cleaning duty was not created")
		return nil, apperrors.NewDerivationError(r.ID, cleaning.ID, err)
	}
	log.Info("Reservation completed")
	return &CompletionResponse{Reservation: r, CleaningDuty: cleaning}, nil
}

// createCleaning writes a derived cleaning duty. An existing duty with the
// same id means the derivation already happened.
func createCleaning(ctx context.Context, w store.Writer, doc store.Document) error {
	_, err := w.Create(ctx, models.CollectionCleaningDuties, doc)
	if err != nil && !apperrors.IsAlreadyExists(err) {
		return err
	}
	return nil
}

// CancelReservation cancels a booked reservation
func (s *SchedulingService) CancelReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.Reservation, error) {
	if err := authorize(actor, scheduling.CapBookReservations); err != nil {
		return nil, err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	book := s.book(reservations)
	if err := ownsReservation(book, actor, id); err != nil {
		return nil, err
	}

	r, err := book.Cancel(id, s.now())
	if err != nil {
		return nil, err
	}
	patch := map[string]interface{}{
		"status":      r.Status,
		"canceled_at": r.CanceledAt,
		"updated_at":  r.UpdatedAt,
	}
	if err := s.store.Update(ctx, models.CollectionReservations, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrReservationNotFound)
	}

	s.log(ctx, tenantID, actor).WithField("reservation_id", id).Info("Reservation canceled")
	return &r, nil
}

// DeleteReservation removes a reservation in any state. Cleaning duties
// derived from it are kept.
func (s *SchedulingService) DeleteReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string) error {
	if err := authorize(actor, scheduling.CapDeleteReservations); err != nil {
		return err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return err
	}
	if err := s.book(reservations).Delete(id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, models.CollectionReservations, id); err != nil {
		return storeErr(err, apperrors.ErrReservationNotFound)
	}

	s.log(ctx, tenantID, actor).WithField("reservation_id", id).Info("Reservation deleted")
	return nil
}

// SpaceStatus reports the occupancy of space at instant together with the
// previous and next reservations. A zero instant means now.
func (s *SchedulingService) SpaceStatus(ctx context.Context, tenantID string, space models.SpaceType, instant time.Time) (*SpaceStatusResponse, error) {
	if !space.IsValid() {
		return nil, apperrors.NewValidationError("space", apperrors.ErrInvalidSpace.Error())
	}
	if instant.IsZero() {
		instant = s.now()
	}
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.spaceStatus(st, space, instant), nil
}

// SpacesStatus reports SpaceStatus for every bookable space
func (s *SchedulingService) SpacesStatus(ctx context.Context, tenantID string, instant time.Time) ([]SpaceStatusResponse, error) {
	if instant.IsZero() {
		instant = s.now()
	}
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]SpaceStatusResponse, 0, len(models.AllSpaces()))
	for _, space := range models.AllSpaces() {
		out = append(out, *s.spaceStatus(st, space, instant))
	}
	return out, nil
}

func (s *SchedulingService) spaceStatus(st TenantState, space models.SpaceType, instant time.Time) *SpaceStatusResponse {
	book := s.book(st.Reservations)
	occupancy := scheduling.NewSaunaLog(st.Sauna).Overlay(book.OccupancyAt(space, instant), space, instant)

	resp := &SpaceStatusResponse{
		Space:     space,
		Label:     space.Label(),
		At:        instant.In(s.loc),
		Occupancy: occupancy,
		Previous:  book.PreviousReservation(space, instant),
		Next:      book.NextReservation(space, instant),
	}
	if resp.Previous != nil {
		resp.Cleaning = scheduling.NewCleaningBoard(st.Cleaning).ForReservation(resp.Previous.ID)
		if resp.Cleaning != nil && resp.Cleaning.Status != models.CleaningStatusPending {
			resp.Cleaning = nil
		}
	}
	return resp
}

// ReconcileDerivations creates the cleaning duty of every completed
// reservation that lacks one. Ids are deterministic, so concurrent runs
// cannot create duplicates.
func (s *SchedulingService) ReconcileDerivations(ctx context.Context, tenantID string) (*ReconcileResponse, error) {
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	cleaning, err := loadCleaning(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	board := scheduling.NewCleaningBoard(cleaning)

	resp := &ReconcileResponse{TenantID: tenantID, Created: []string{}}
	for _, r := range reservations {
		if r.Status != models.ReservationStatusCompleted {
			continue
		}
		resp.Checked++
		if board.ForReservation(r.ID) != nil {
			continue
		}

		cd, err := scheduling.Spawn(r, s.window, s.now())
		if err != nil {
			logFor(ctx, tenantID).WithError(err).WithField("reservation_id", r.ID).Warn("Skipping reservation with invalid date")
			continue
		}
		cd.TenantID = tenantID
		doc, err := store.Encode(tenantID, cd)
		if err != nil {
			return resp, err
		}
		doc.ID = cd.ID
		if _, err := s.store.Create(ctx, models.CollectionCleaningDuties, doc); err != nil {
			if apperrors.IsAlreadyExists(err) {
				continue
			}
			return resp, apperrors.NewDerivationError(r.ID, cd.ID, err)
		}
		resp.Created = append(resp.Created, cd.ID)
	}

	if len(resp.Created) > 0 {
		logFor(ctx, tenantID).WithField("created", len(resp.Created)).Info("Recreated missing cleaning duties")
	}
	return resp, nil
}

func (s *SchedulingService) book(reservations []models.Reservation) *scheduling.ReservationBook {
	return scheduling.NewReservationBook(reservations, s.loc, s.lookahead)
}

// ownsReservation lets residents touch only the bookings they made
func ownsReservation(book *scheduling.ReservationBook, actor scheduling.Actor, id string) error {
	r, err := book.Get(id)
	if err != nil {
		return err
	}
	if !actor.Can(scheduling.CapCompleteReservations) && r.CreatedBy != actor.ID {
		return apperrors.ErrInsufficientRole
	}
	return nil
}
