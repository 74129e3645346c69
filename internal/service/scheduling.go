package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// SchedulingOptions tunes the scheduling service
type SchedulingOptions struct {
	Location           *time.Location
	CleaningWindow     scheduling.CleaningWindow
	PreparingLookahead time.Duration
	Now                func() time.Time
}

// SchedulingService is the only component that talks to the document store.
// It loads tenant state, runs the pure scheduling rules and writes the
// resulting mutations back.
type SchedulingService struct {
	store     store.Store
	validator *validator.Validate
	loc       *time.Location
	window    scheduling.CleaningWindow
	lookahead time.Duration
	now       func() time.Time

	mu    sync.RWMutex
	views map[string]*TenantView
}

// NewSchedulingService creates a new scheduling service
func NewSchedulingService(st store.Store, validator *validator.Validate, opts SchedulingOptions) *SchedulingService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.PreparingLookahead <= 0 {
		opts.PreparingLookahead = scheduling.DefaultPreparingLookahead
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SchedulingService{
		store:     st,
		validator: validator,
		loc:       opts.Location,
		window:    opts.CleaningWindow,
		lookahead: opts.PreparingLookahead,
		now:       opts.Now,
		views:     map[string]*TenantView{},
	}
}

// TenantState is one consistent read of a tenant's scheduling entities
type TenantState struct {
	Duties       []models.Duty
	Reservations []models.Reservation
	Cleaning     []models.CleaningDuty
	Sauna        []models.SaunaSession
}

// Location returns the tenant calendar used for "today"
func (s *SchedulingService) Location() *time.Location {
	return s.loc
}

// Watch starts a live view of a tenant fed by store subscriptions. A tenant
// has at most one view; watching it again returns the running one.
func (s *SchedulingService) Watch(ctx context.Context, tenantID string) (*TenantView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.views[tenantID]; ok && !v.closed() {
		return v, nil
	}
	v, err := newTenantView(ctx, s.store, tenantID, func(v *TenantView) {
		s.mu.Lock()
		if s.views[tenantID] == v {
			delete(s.views, tenantID)
		}
		s.mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	s.views[tenantID] = v
	return v, nil
}

// state serves reads from the live view when it is ready, otherwise from one-shot snapshots
func (s *SchedulingService) state(ctx context.Context, tenantID string) (TenantState, error) {
	s.mu.RLock()
	v := s.views[tenantID]
	s.mu.RUnlock()
	if v != nil {
		if st, ok := v.State(); ok {
			return st, nil
		}
	}

	duties, err := loadDuties(ctx, s.store, tenantID)
	if err != nil {
		return TenantState{}, err
	}
	reservations, err := loadReservations(ctx, s.store, tenantID)
	if err != nil {
		return TenantState{}, err
	}
	cleaning, err := loadCleaning(ctx, s.store, tenantID)
	if err != nil {
		return TenantState{}, err
	}
	sauna, err := loadSauna(ctx, s.store, tenantID)
	if err != nil {
		return TenantState{}, err
	}
	return TenantState{Duties: duties, Reservations: reservations, Cleaning: cleaning, Sauna: sauna}, nil
}

func loadCollection[T any](ctx context.Context, st store.Store, collection, tenantID string) ([]T, error) {
	snap, err := st.Snapshot(ctx, collection, tenantID)
	if err != nil {
		return nil, err
	}
	out, err := store.Decode[T](snap)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", collection, "", err)
	}
	return out, nil
}

func loadDuties(ctx context.Context, st store.Store, tenantID string) ([]models.Duty, error) {
	return loadCollection[models.Duty](ctx, st, models.CollectionDuties, tenantID)
}

func loadReservations(ctx context.Context, st store.Store, tenantID string) ([]models.Reservation, error) {
	return loadCollection[models.Reservation](ctx, st, models.CollectionReservations, tenantID)
}

func loadCleaning(ctx context.Context, st store.Store, tenantID string) ([]models.CleaningDuty, error) {
	return loadCollection[models.CleaningDuty](ctx, st, models.CollectionCleaningDuties, tenantID)
}

func loadSauna(ctx context.Context, st store.Store, tenantID string) ([]models.SaunaSession, error) {
	return loadCollection[models.SaunaSession](ctx, st, models.CollectionSaunaSessions, tenantID)
}

// today returns the current calendar day in the tenant's time zone
func (s *SchedulingService) today() string {
	return scheduling.DateKeyAt(s.now(), s.loc)
}

func (s *SchedulingService) validate(req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on the '%s' rule", verrs[0].Tag()))
		}
		return apperrors.NewValidationError("", err.Error())
	}
	return nil
}

// toPatch converts an entity into a full-field patch
func toPatch(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	patch := map[string]interface{}{}
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	return patch, nil
}

// storeErr maps a store not-found onto the entity's own not-found error
func storeErr(err error, notFound error) error {
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		return notFound
	}
	return err
}

func (s *SchedulingService) log(ctx context.Context, tenantID string, actor scheduling.Actor) *logger.Logger {
	return logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": tenantID,
		"actor_id":  actor.ID,
		"role":      actor.Role,
	})
}

func logFor(ctx context.Context, tenantID string) *logger.Logger {
	return logger.WithContext(ctx).WithField("tenant_id", tenantID)
}
