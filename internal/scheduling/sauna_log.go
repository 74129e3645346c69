package scheduling

import (
	"sort"
	"strings"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
)

// SaunaSessionPayload carries the fields given when a walk-in session starts
type SaunaSessionPayload struct {
	Space        models.SpaceType
	ResidentName string
	Unit         string
}

// SaunaLog evaluates walk-in sauna sessions over one snapshot of a tenant's sessions
type SaunaLog struct {
	sessions []models.SaunaSession
}

// NewSaunaLog creates a log ordered by start time, then id
func NewSaunaLog(sessions []models.SaunaSession) *SaunaLog {
	sorted := append([]models.SaunaSession(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartedAt.Equal(sorted[j].StartedAt) {
			return sorted[i].StartedAt.Before(sorted[j].StartedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &SaunaLog{sessions: sorted}
}

// Get returns a session by id
func (l *SaunaLog) Get(id string) (models.SaunaSession, error) {
	for _, s := range l.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return models.SaunaSession{}, apperrors.ErrSaunaSessionNotFound
}

// Active returns the running session of space, or nil
func (l *SaunaLog) Active(space models.SpaceType) *models.SaunaSession {
	for i := range l.sessions {
		if l.sessions[i].Space == space && l.sessions[i].Status == models.SaunaSessionActive {
			s := l.sessions[i]
			return &s
		}
	}
	return nil
}

// ActiveSessions lists every running session, oldest first
func (l *SaunaLog) ActiveSessions() []models.SaunaSession {
	out := make([]models.SaunaSession, 0)
	for _, s := range l.sessions {
		if s.Status == models.SaunaSessionActive {
			out = append(out, s)
		}
	}
	return out
}

// Recent lists up to limit finished sessions, latest start first
func (l *SaunaLog) Recent(limit int) []models.SaunaSession {
	out := make([]models.SaunaSession, 0)
	for i := len(l.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if l.sessions[i].Status == models.SaunaSessionDone {
			out = append(out, l.sessions[i])
		}
	}
	return out
}

// SessionAt returns the session holding space at instant. A session holds
// [StartedAt, EndedAt), or from StartedAt on while it is active.
func (l *SaunaLog) SessionAt(space models.SpaceType, instant time.Time) *models.SaunaSession {
	for i := len(l.sessions) - 1; i >= 0; i-- {
		s := l.sessions[i]
		if s.Space != space || instant.Before(s.StartedAt) {
			continue
		}
		if s.Status == models.SaunaSessionActive || (s.EndedAt != nil && instant.Before(*s.EndedAt)) {
			return &s
		}
	}
	return nil
}

// Overlay marks a vacant or preparing sauna occupied while a walk-in session holds it
func (l *SaunaLog) Overlay(occ Occupancy, space models.SpaceType, instant time.Time) Occupancy {
	if occ.State == Occupied || !space.IsSauna() {
		return occ
	}
	if s := l.SessionAt(space, instant); s != nil {
		return Occupancy{State: Occupied, Session: s}
	}
	return occ
}

// Start opens a walk-in session. A sauna holds at most one active session.
func (l *SaunaLog) Start(p SaunaSessionPayload, actor Actor, now time.Time) (models.SaunaSession, error) {
	if !p.Space.IsSauna() {
		return models.SaunaSession{}, apperrors.NewValidationError("space", apperrors.ErrNotASauna.Error())
	}
	name := strings.TrimSpace(p.ResidentName)
	if name == "" {
		return models.SaunaSession{}, apperrors.NewValidationError("resident_name", "is required")
	}
	unit := strings.TrimSpace(p.Unit)
	if unit == "" {
		return models.SaunaSession{}, apperrors.NewValidationError("unit", "is required")
	}
	if active := l.Active(p.Space); active != nil {
		return models.SaunaSession{}, apperrors.NewInUseError(string(p.Space), "sauna session", active.ID)
	}

	return models.SaunaSession{
		Space:        p.Space,
		ResidentName: name,
		Unit:         unit,
		Status:       models.SaunaSessionActive,
		StartedAt:    now.UTC(),
		StartedBy:    actor.DisplayName(),
	}, nil
}

// Finish closes an active session
func (l *SaunaLog) Finish(id string, actor Actor, now time.Time) (models.SaunaSession, error) {
	s, err := l.Get(id)
	if err != nil {
		return models.SaunaSession{}, err
	}
	if s.Status != models.SaunaSessionActive {
		return models.SaunaSession{}, apperrors.NewInvalidTransitionError("sauna session", id, string(s.Status), "finish")
	}
	ended := now.UTC()
	if ended.Before(s.StartedAt) {
		ended = s.StartedAt
	}
	s.Status = models.SaunaSessionDone
	s.EndedAt = &ended
	s.EndedBy = actor.DisplayName()
	return s, nil
}
