package service

import (
	"context"
	"fmt"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/store"

	"github.com/google/uuid"
)

// saunaRecentLimit is how many finished sessions the overview carries
const saunaRecentLimit = 10

// StartSaunaSessionRequest represents the request to log a walk-in sauna session
type StartSaunaSessionRequest struct {
	Space        models.SpaceType `json:"space" validate:"required"`
	ResidentName string           `json:"resident_name" validate:"required,max=120"`
	Unit         string           `json:"unit" validate:"required,max=20"`
}

// SaunaOverviewResponse lists running sessions and the latest finished ones
type SaunaOverviewResponse struct {
	Active []models.SaunaSession `json:"active"`
	Recent []models.SaunaSession `json:"recent"`
}

// SaunaOverview reports the running sauna sessions and the most recent finished ones
func (s *SchedulingService) SaunaOverview(ctx context.Context, tenantID string) (*SaunaOverviewResponse, error) {
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	log := scheduling.NewSaunaLog(st.Sauna)
	return &SaunaOverviewResponse{
		Active: log.ActiveSessions(),
		Recent: log.Recent(saunaRecentLimit),
	}, nil
}

// StartSaunaSession logs a walk-in session. The sauna must not hold another
// session or be occupied by a reservation right now.
func (s *SchedulingService) StartSaunaSession(ctx context.Context, tenantID string, actor scheduling.Actor, req *StartSaunaSessionRequest) (*models.SaunaSession, error) {
	if err := authorize(actor, scheduling.CapManageSauna); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	sessions, err := loadSauna(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	session, err := scheduling.NewSaunaLog(sessions).Start(scheduling.SaunaSessionPayload{
		Space:        req.Space,
		ResidentName: req.ResidentName,
		Unit:         req.Unit,
	}, actor, now)
	if err != nil {
		return nil, err
	}

	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	if occ := s.book(reservations).OccupancyAt(req.Space, now); occ.State == scheduling.Occupied {
		return nil, apperrors.NewInUseError(string(req.Space), "reservation", occ.Reservation.ID)
	}

	session.ID = uuid.NewString()
	session.TenantID = tenantID
	doc, err := store.Encode(tenantID, session)
	if err != nil {
		return nil, err
	}
	doc.ID = session.ID
	if _, err := s.store.Create(ctx, models.CollectionSaunaSessions, doc); err != nil {
		return nil, fmt.Errorf("failed to create sauna session: %w", err)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"sauna_session_id": session.ID,
		"space":            session.Space,
		"unit":             session.Unit,
	}).Info("Sauna session started")
	return &session, nil
}

// FinishSaunaSession closes an active sauna session
func (s *SchedulingService) FinishSaunaSession(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.SaunaSession, error) {
	if err := authorize(actor, scheduling.CapManageSauna); err != nil {
		return nil, err
	}
	sessions, err := loadSauna(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}

	session, err := scheduling.NewSaunaLog(sessions).Finish(id, actor, s.now())
	if err != nil {
		return nil, err
	}
	patch := map[string]interface{}{
		"status":   session.Status,
		"ended_at": session.EndedAt,
		"ended_by": session.EndedBy,
	}
	if err := s.store.Update(ctx, models.CollectionSaunaSessions, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrSaunaSessionNotFound)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"sauna_session_id": id,
		"space":            session.Space,
		"minutes":          int(session.EndedAt.Sub(session.StartedAt).Minutes()),
	}).Info("Sauna session finished")
	return &session, nil
}
