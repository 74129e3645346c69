package service

import (
	"context"
	"time"

	"condo-ops-backend/internal/database/models"
	"condo-ops-backend/internal/scheduling"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulingServiceInterface defines the interface for the scheduling service
type SchedulingServiceInterface interface {
	ListDuties(ctx context.Context, tenantID string) ([]models.Duty, error)
	CreateDuty(ctx context.Context, tenantID string, actor scheduling.Actor, req *CreateDutyRequest) (*models.Duty, error)
	UpdateDuty(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *UpdateDutyRequest) (*models.Duty, error)
	SetDutyActive(ctx context.Context, tenantID string, actor scheduling.Actor, id string, active bool) (*models.Duty, error)
	DeleteDuty(ctx context.Context, tenantID string, actor scheduling.Actor, id string) error
	ToggleDutyCompletion(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *ToggleDutyRequest) (*ToggleDutyResponse, error)
	TodayBoard(ctx context.Context, tenantID, date string) (*BoardResponse, error)

	ReservationsForMonth(ctx context.Context, tenantID, yearMonth string) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, tenantID string, actor scheduling.Actor, req *ReservationRequest) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *ReservationRequest) (*models.Reservation, error)
	CompleteReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *CompleteReservationRequest) (*CompletionResponse, error)
	CancelReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, tenantID string, actor scheduling.Actor, id string) error
	SpaceStatus(ctx context.Context, tenantID string, space models.SpaceType, instant time.Time) (*SpaceStatusResponse, error)
	SpacesStatus(ctx context.Context, tenantID string, instant time.Time) ([]SpaceStatusResponse, error)

	PendingCleaning(ctx context.Context, tenantID, filter string) ([]models.CleaningDuty, error)
	FinishCleaning(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.CleaningDuty, error)
	AssignCleaningCrew(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *AssignCrewRequest) (*models.CleaningDuty, error)
	CleaningHistory(ctx context.Context, tenantID, yearMonth, filter string) (*CleaningHistoryResponse, error)

	SaunaOverview(ctx context.Context, tenantID string) (*SaunaOverviewResponse, error)
	StartSaunaSession(ctx context.Context, tenantID string, actor scheduling.Actor, req *StartSaunaSessionRequest) (*models.SaunaSession, error)
	FinishSaunaSession(ctx context.Context, tenantID string, actor scheduling.Actor, id string) (*models.SaunaSession, error)

	ReconcileDerivations(ctx context.Context, tenantID string) (*ReconcileResponse, error)
}

var _ SchedulingServiceInterface = (*SchedulingService)(nil)
