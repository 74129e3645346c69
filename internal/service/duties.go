package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/store"
)

// CreateDutyRequest represents the request to create a duty
type CreateDutyRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	Kind        models.DutyKind  `json:"kind" validate:"required"`
	Shift       models.ShiftType `json:"shift" validate:"required"`
	Weekdays    []int            `json:"weekdays,omitempty" validate:"omitempty,dive,min=0,max=6"`
	DueDate     string           `json:"due_date,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// UpdateDutyRequest represents the request to update a duty
type UpdateDutyRequest struct {
	Title       *string           `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	Kind        *models.DutyKind  `json:"kind,omitempty"`
	Shift       *models.ShiftType `json:"shift,omitempty"`
	Weekdays    []int             `json:"weekdays,omitempty" validate:"omitempty,dive,min=0,max=6"`
	DueDate     *string           `json:"due_date,omitempty"`
}

// ToggleDutyRequest marks a duty done for a day, or undoes it
type ToggleDutyRequest struct {
	DateKey     string `json:"date_key,omitempty"`
	ElapsedNote string `json:"elapsed_note,omitempty" validate:"max=500"`
}

// ToggleDutyResponse is the duty after a toggle
type ToggleDutyResponse struct {
	Duty    models.Duty `json:"duty"`
	DateKey string      `json:"date_key"`
	Done    bool        `json:"done"`
}

// BoardResponse is a day's board plus the completions counted for it
type BoardResponse struct {
	scheduling.Board
	Completions []scheduling.Completion `json:"completions"`
}

// ListDuties returns every duty of the tenant ordered by title
func (s *SchedulingService) ListDuties(ctx context.Context, tenantID string) ([]models.Duty, error) {
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	duties := st.Duties
	sort.SliceStable(duties, func(i, j int) bool {
		if duties[i].Title != duties[j].Title {
			return duties[i].Title < duties[j].Title
		}
		return duties[i].ID < duties[j].ID
	})
	return duties, nil
}

// CreateDuty creates a recurring or one-off duty
func (s *SchedulingService) CreateDuty(ctx context.Context, tenantID string, actor scheduling.Actor, req *CreateDutyRequest) (*models.Duty, error) {
	if err := authorize(actor, scheduling.CapManageDuties); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	duty := scheduling.NormalizeDuty(models.Duty{
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Shift:       req.Shift,
		Weekdays:    req.Weekdays,
		DueDate:     strings.TrimSpace(req.DueDate),
		Active:      req.Active == nil || *req.Active,
		History:     []models.CompletionRecord{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := scheduling.ValidateDuty(duty); err != nil {
		return nil, err
	}

	doc, err := store.Encode(tenantID, duty)
	if err != nil {
		return nil, err
	}
	id, err := s.store.Create(ctx, models.CollectionDuties, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create duty: %w", err)
	}
	duty.ID = id

	s.log(ctx, tenantID, actor).WithField("duty_id", id).Info("Duty created")
	return &duty, nil
}

// UpdateDuty edits a duty's definition. Completion history is kept.
func (s *SchedulingService) UpdateDuty(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *UpdateDutyRequest) (*models.Duty, error) {
	if err := authorize(actor, scheduling.CapManageDuties); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	duty, err := s.freshDuty(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		duty.Title = *req.Title
	}
	if req.Description != nil {
		duty.Description = *req.Description
	}
	if req.Shift != nil {
		duty.Shift = *req.Shift
	}
	if req.Kind != nil && *req.Kind != duty.Kind {
		duty.Kind = *req.Kind
		// switching kind drops the schedule of the previous kind
		duty.Weekdays = nil
		duty.DueDate = ""
	}
	if req.Weekdays != nil {
		duty.Weekdays = req.Weekdays
	}
	if req.DueDate != nil {
		duty.DueDate = strings.TrimSpace(*req.DueDate)
	}
	duty = scheduling.NormalizeDuty(duty)
	if err := scheduling.ValidateDuty(duty); err != nil {
		return nil, err
	}
	duty.UpdatedAt = s.now().UTC()

	weekdays := duty.Weekdays
	if weekdays == nil {
		weekdays = []int{}
	}
	patch := map[string]interface{}{
		"title":       duty.Title,
		"description": duty.Description,
		"kind":        duty.Kind,
		"shift":       duty.Shift,
		"weekdays":    weekdays,
		"due_date":    duty.DueDate,
		"updated_at":  duty.UpdatedAt,
	}
	if err := s.store.Update(ctx, models.CollectionDuties, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithField("duty_id", id).Info("Duty updated")
	return &duty, nil
}

// SetDutyActive pauses or resumes a duty. Inactive duties are never due.
func (s *SchedulingService) SetDutyActive(ctx context.Context, tenantID string, actor scheduling.Actor, id string, active bool) (*models.Duty, error) {
	if err := authorize(actor, scheduling.CapManageDuties); err != nil {
		return nil, err
	}
	duty, err := s.freshDuty(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	duty.Active = active
	duty.UpdatedAt = s.now().UTC()
	patch := map[string]interface{}{"active": active, "updated_at": duty.UpdatedAt}
	if err := s.store.Update(ctx, models.CollectionDuties, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{"duty_id": id, "active": active}).Info("Duty activity changed")
	return &duty, nil
}

// DeleteDuty removes a duty and its completion history
func (s *SchedulingService) DeleteDuty(ctx context.Context, tenantID string, actor scheduling.Actor, id string) error {
	if err := authorize(actor, scheduling.CapManageDuties); err != nil {
		return err
	}
	if _, err := s.freshDuty(ctx, tenantID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, models.CollectionDuties, id); err != nil {
		return storeErr(err, apperrors.ErrDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithField("duty_id", id).Info("Duty deleted")
	return nil
}

// ToggleDutyCompletion marks a duty done for a day or undoes an existing
// completion. An empty date means today in the tenant's calendar. Undo is
// always allowed; marking done requires the duty to be due that day.
func (s *SchedulingService) ToggleDutyCompletion(ctx context.Context, tenantID string, actor scheduling.Actor, id string, req *ToggleDutyRequest) (*ToggleDutyResponse, error) {
	if err := authorize(actor, scheduling.CapCompleteDuties); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ToggleDutyRequest{}
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	dateKey := strings.TrimSpace(req.DateKey)
	if dateKey == "" {
		dateKey = s.today()
	}
	if _, err := scheduling.ParseDate(dateKey); err != nil {
		return nil, apperrors.NewValidationError("date_key", apperrors.ErrInvalidDateKey.Error())
	}

	duty, err := s.freshDuty(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	wasDone := scheduling.IsDoneOn(duty, dateKey)
	if !wasDone && !scheduling.IsDueOn(duty, dateKey) {
		return nil, apperrors.NewValidationError("date_key", "duty is not due on this date")
	}

	now := s.now()
	toggled := scheduling.Toggle(duty, dateKey, actor, now)
	if !wasDone {
		toggled.History[0].ElapsedNote = strings.TrimSpace(req.ElapsedNote)
	}
	toggled.UpdatedAt = now.UTC()

	patch := map[string]interface{}{"history": toggled.History, "updated_at": toggled.UpdatedAt}
	if err := s.store.Update(ctx, models.CollectionDuties, id, patch); err != nil {
		return nil, storeErr(err, apperrors.ErrDutyNotFound)
	}

	s.log(ctx, tenantID, actor).WithFields(map[string]interface{}{
		"duty_id":  id,
		"date_key": dateKey,
		"done":     !wasDone,
	}).Info("Duty completion toggled")
	return &ToggleDutyResponse{Duty: toggled, DateKey: dateKey, Done: !wasDone}, nil
}

// TodayBoard builds the board of date. An empty date means today.
func (s *SchedulingService) TodayBoard(ctx context.Context, tenantID, date string) (*BoardResponse, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := scheduling.ParseDate(date); err != nil {
		return nil, apperrors.NewValidationError("date", apperrors.ErrInvalidDateKey.Error())
	}
	st, err := s.state(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	board := scheduling.BuildBoard(st.Duties, date, scheduling.ShiftAt(s.now(), s.loc))
	return &BoardResponse{
		Board:       board,
		Completions: scheduling.CompletionsOn(st.Duties, date),
	}, nil
}

// freshDuty reads a duty from the store, bypassing the live view
func (s *SchedulingService) freshDuty(ctx context.Context, tenantID, id string) (models.Duty, error) {
	duties, err := loadDuties(ctx, s.store, tenantID)
	if err != nil {
		return models.Duty{}, err
	}
	for _, d := range duties {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Duty{}, apperrors.ErrDutyNotFound
}

// authorize checks the actor's role before a mutation
func authorize(actor scheduling.Actor, c scheduling.Capability) error {
	if !actor.Can(c) {
		return apperrors.ErrInsufficientRole
	}
	return nil
}
