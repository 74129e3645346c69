package service

import (
	"context"
	"strings"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
)

// AssignCrewRequest represents the request to assign a cleaning crew
type AssignCrewRequest struct {
	Crew string `json:"crew" validate:"required,max=120"`
}

// CleaningHistoryResponse is one month of finished cleaning with its statistics
type CleaningHistoryResponse struct {
	Month  string                   `json:"month"`
	Filter string                   `json:"filter,omitempty"`
	Items  []models.CleaningDuty    `json:"items"`
	Stats  scheduling.CleaningStats `json:"stats"`
	Months []string                 `json:"months"`
}

// PendingCleaning lists pending cleaning duties matching filter, soonest first
func (s *SchedulingService) PendingCleaning(ctx context.Context, tenantID, filter string) ([]models.CleaningDuty, error) {
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return scheduling.NewCleaningBoard(st.Cleaning).Pending(filter), nil
}

// FinishCleaning marks a pending cleaning duty done
func (s *SchedulingService) FinishCleaning(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.CleaningDuty, error) {
	if err := authorize(actor, scheduling.CapManageCleaning); err != nil {
		return nil, err
	}
	board, err := s.freshCleaningBoard(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	cd, err := board.Finish(id, actor, s.now())
	if err != nil {
		return nil, err
	}
	patch := map[string]interface{}{
		"status":      cd.Status,
		"finished_at": cd.FinishedAt,
		"finished_by": cd.FinishedBy,
	}
	if err := s.store.Update(ctx, models.CollectionCleaningDuties, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrCleaningDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"cleaning_duty_id": id,
		"reservation_id":   cd.ReservationID,
	}).Info("Cleaning finished")
	return &cd, nil
}

// AssignCleaningCrew sets the crew of a pending cleaning duty
func (s *SchedulingService) AssignCleaningCrew(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *AssignCrewRequest) (*models.CleaningDuty, error) {
	if err := authorize(actor, scheduling.CapManageCleaning); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	board, err := s.freshCleaningBoard(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	cd, err := board.AssignCrew(id, req.Crew)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, models.CollectionCleaningDuties, id, map[string]interface{}{"crew": cd.Crew}); err != nil {
		return nil, storeErr(err, apperrors.ErrCleaningDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"cleaning_duty_id": id,
		"crew":             cd.Crew,
	}).Info("Cleaning crew assigned")
	return &cd, nil
}

// CleaningHistory lists the finished cleaning duties of a YYYY-MM month,
// most recent first, with per-space counts. An empty month means the
// current one.
func (s *SchedulingService) CleaningHistory(ctx context.Context, tenantID, yearMonth, filter string) (*CleaningHistoryResponse, error) {
	if yearMonth == "" {
		yearMonth = scheduling.MonthOf(s.today())
	}
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	filter = strings.TrimSpace(filter)
	items, err := scheduling.NewCleaningBoard(st.Cleaning).HistoryForMonth(yearMonth, filter)
	if err != nil {
		return nil, err
	}
	return &CleaningHistoryResponse{
		Month:  yearMonth,
		Filter: filter,
		Items:  items,
		Stats:  scheduling.MonthlyStats(items),
		Months: scheduling.Last12Months(s.now(), s.loc),
	}, nil
}

func (s *SchedulingService) freshCleaningBoard(ctx context.Context, tenantID string) (*scheduling.CleaningBoard, error) {
	cleaning, err := loadCleaning(ctx, s.store, tenantID)
	if err != nil {
		return nil, err
	}
	return scheduling.NewCleaningBoard(cleaning), nil
}
