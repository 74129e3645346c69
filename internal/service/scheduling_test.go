package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/service"
	"condo-ops-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const tenant = "condo-aurora"

var (
	sindico  = scheduling.Actor{ID: "u-sindico", Name: "Marta", Role: scheduling.RoleSindico}
	zelador  = scheduling.Actor{ID: "u-zelador", Name: "Jorge", Role: scheduling.RoleZelador}
	morador  = scheduling.Actor{ID: "u-morador", Name: "Lia", Role: scheduling.RoleMorador}
	vizinho  = scheduling.Actor{ID: "u-vizinho", Name: "Caio", Role: scheduling.RoleMorador}
	provider = scheduling.Actor{ID: "u-crew", Name: "Limpa Bem", Role: scheduling.RolePrestador}
)

// flakyStore hides the transactional side of a store and can fail creates
type flakyStore struct {
	store.Store
	failCollection string
}

func (f *flakyStore) Create(ctx context.Context, collection string, doc store.Document) (string, error) {
	if collection == f.failCollection {
		return "", apperrors.NewPersistenceError("create", collection, doc.ID, errors.New("connection reset by peer"))
	}
	return f.Store.Create(ctx, collection, doc)
}

// SchedulingServiceTestSuite tests the SchedulingService against the in-memory store
type SchedulingServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	loc   *time.Location
	now   time.Time
	store *store.MemoryStore
	svc   *service.SchedulingService
}

func (suite *SchedulingServiceTestSuite) SetupTest() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	suite.Require().NoError(err)
	suite.ctx = context.Background()
	suite.loc = loc
	// Saturday 2024-06-15, 10:00 local
	suite.now = time.Date(2024, 6, 15, 10, 0, 0, 0, loc)
	suite.store = store.NewMemoryStore()
	suite.svc = suite.newService(suite.store)
}

func (suite *SchedulingServiceTestSuite) newService(st store.Store) *service.SchedulingService {
	return service.NewSchedulingService(st, validator.New(), service.SchedulingOptions{
		Location: suite.loc,
		Now:      func() time.Time { return suite.now },
	})
}

func (suite *SchedulingServiceTestSuite) book(space models.SpaceType, date, start, end string) *models.Reservation {
	r, err := suite.svc.CreateReservation(suite.ctx, tenant, morador, &service.ReservationRequest{
		Space:     space,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		BookedBy:  "Lia",
		Unit:      "402",
	})
	suite.Require().NoError(err)
	return r
}

func (suite *SchedulingServiceTestSuite) recurring(title string, shift models.ShiftType, weekdays ...int) *models.Duty {
	d, err := suite.svc.CreateDuty(suite.ctx, tenant, sindico, &service.CreateDutyRequest{
		Title:    title,
		Kind:     models.DutyKindRecurring,
		Shift:    shift,
		Weekdays: weekdays,
	})
	suite.Require().NoError(err)
	return d
}

func (suite *SchedulingServiceTestSuite) TestCreateDutyNormalizes() {
	d := suite.recurring("  regar jardim ", models.ShiftTypeDay, 6, 1, 6)
	suite.Equal("REGAR JARDIM", d.Title)
	suite.Equal([]int{1, 6}, d.Weekdays)
	suite.True(d.Active)
	suite.NotEmpty(d.ID)

	duties, err := suite.svc.ListDuties(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Require().Len(duties, 1)
	suite.Equal(d.ID, duties[0].ID)
	suite.Equal(tenant, duties[0].TenantID)
}

func (suite *SchedulingServiceTestSuite) TestCreateDutyRejectsBadSchedules() {
	_, err := suite.svc.CreateDuty(suite.ctx, tenant, sindico, &service.CreateDutyRequest{
		Title: "LIXO",
		Kind:  models.DutyKindRecurring,
		Shift: models.ShiftTypeNight,
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.CreateDuty(suite.ctx, tenant, sindico, &service.CreateDutyRequest{
		Title:    "LIXO",
		Kind:     models.DutyKindOneOff,
		Shift:    models.ShiftTypeNight,
		DueDate:  "2024-06-20",
		Weekdays: []int{1},
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.CreateDuty(suite.ctx, tenant, sindico, &service.CreateDutyRequest{
		Title:    "LIXO",
		Kind:     models.DutyKindRecurring,
		Shift:    models.ShiftTypeNight,
		Weekdays: []int{7},
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.CreateDuty(suite.ctx, tenant, zelador, &service.CreateDutyRequest{
		Title:    "LIXO",
		Kind:     models.DutyKindRecurring,
		Shift:    models.ShiftTypeNight,
		Weekdays: []int{1},
	})
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *SchedulingServiceTestSuite) TestUpdateDutySwitchesKind() {
	d := suite.recurring("PISCINA", models.ShiftTypeDay, 1, 3)

	kind := models.DutyKindOneOff
	due := "2024-06-20"
	updated, err := suite.svc.UpdateDuty(suite.ctx, tenant, sindico, d.ID, &service.UpdateDutyRequest{Kind: &kind, DueDate: &due})
	suite.Require().NoError(err)
	suite.Equal(models.DutyKindOneOff, updated.Kind)
	suite.Empty(updated.Weekdays)
	suite.Equal(due, updated.DueDate)

	duties, err := suite.svc.ListDuties(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Equal(due, duties[0].DueDate)
	suite.Empty(duties[0].Weekdays)

	_, err = suite.svc.UpdateDuty(suite.ctx, tenant, sindico, "missing", &service.UpdateDutyRequest{})
	suite.ErrorIs(err, apperrors.ErrDutyNotFound)
}

func (suite *SchedulingServiceTestSuite) TestDutiesAreTenantScoped() {
	d := suite.recurring("PORTARIA", models.ShiftTypeDay, 6)

	other, err := suite.svc.ListDuties(suite.ctx, "condo-other")
	suite.Require().NoError(err)
	suite.Empty(other)

	err = suite.svc.DeleteDuty(suite.ctx, "condo-other", sindico, d.ID)
	suite.ErrorIs(err, apperrors.ErrDutyNotFound)

	suite.Require().NoError(suite.svc.DeleteDuty(suite.ctx, tenant, sindico, d.ID))
	duties, err := suite.svc.ListDuties(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Empty(duties)
}

func (suite *SchedulingServiceTestSuite) TestToggleDutyCompletion() {
	d := suite.recurring("RONDA", models.ShiftTypeDay, 6)

	resp, err := suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, &service.ToggleDutyRequest{ElapsedNote: "45 min"})
	suite.Require().NoError(err)
	suite.True(resp.Done)
	suite.Equal("2024-06-15", resp.DateKey)
	suite.Require().Len(resp.Duty.History, 1)
	suite.Equal("Jorge", resp.Duty.History[0].CompletedByName)
	suite.Equal("45 min", resp.Duty.History[0].ElapsedNote)

	board, err := suite.svc.TodayBoard(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Equal(1, board.Done)
	suite.Equal(0, board.Pending)
	suite.Require().Len(board.Completions, 1)
	suite.Equal(d.ID, board.Completions[0].DutyID)

	resp, err = suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, nil)
	suite.Require().NoError(err)
	suite.False(resp.Done)
	suite.Empty(resp.Duty.History)

	board, err = suite.svc.TodayBoard(suite.ctx, tenant, "2024-06-15")
	suite.Require().NoError(err)
	suite.Equal(1, board.Pending)
	suite.Empty(board.Completions)
}

func (suite *SchedulingServiceTestSuite) TestToggleRequiresDueDay() {
	d := suite.recurring("RONDA", models.ShiftTypeDay, 1)

	_, err := suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, nil)
	suite.True(apperrors.IsValidation(err))

	resp, err := suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, &service.ToggleDutyRequest{DateKey: "2024-06-17"})
	suite.Require().NoError(err)
	suite.True(resp.Done)

	_, err = suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, &service.ToggleDutyRequest{DateKey: "17/06/2024"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.ToggleDutyCompletion(suite.ctx, tenant, morador, d.ID, nil)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *SchedulingServiceTestSuite) TestUndoAllowedAfterDeactivation() {
	d := suite.recurring("RONDA", models.ShiftTypeDay, 6)
	_, err := suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, nil)
	suite.Require().NoError(err)

	_, err = suite.svc.SetDutyActive(suite.ctx, tenant, sindico, d.ID, false)
	suite.Require().NoError(err)

	resp, err := suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, nil)
	suite.Require().NoError(err)
	suite.False(resp.Done)

	_, err = suite.svc.ToggleDutyCompletion(suite.ctx, tenant, zelador, d.ID, nil)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestTodayBoardSplitsShifts() {
	suite.recurring("LIXO", models.ShiftTypeNight, 6)
	suite.recurring("JARDIM", models.ShiftTypeDay, 6)
	suite.recurring("PISCINA", models.ShiftTypeDay, 0)

	board, err := suite.svc.TodayBoard(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Equal("2024-06-15", board.Date)
	suite.Equal(models.ShiftTypeDay, board.CurrentShift)
	suite.Require().Len(board.Day, 1)
	suite.Equal("JARDIM", board.Day[0].Duty.Title)
	suite.Require().Len(board.Night, 1)
	suite.Equal(2, board.Pending)

	_, err = suite.svc.TodayBoard(suite.ctx, tenant, "2024-13-01")
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestReservationConflictAndOverride() {
	first := suite.book(models.SpaceBarbecue, "2024-06-20", "12:00", "16:00")

	req := &service.ReservationRequest{
		Space: models.SpaceBarbecue, Date: "2024-06-20", StartTime: "18:00", EndTime: "22:00",
		BookedBy: "Caio", Unit: "101", Override: true,
	}
	_, err := suite.svc.CreateReservation(suite.ctx, tenant, vizinho, req)
	var conflict *apperrors.ConflictError
	suite.Require().True(errors.As(err, &conflict))
	suite.Equal(first.ID, conflict.ExistingID)

	second, err := suite.svc.CreateReservation(suite.ctx, tenant, sindico, req)
	suite.Require().NoError(err)
	suite.Equal(models.ReservationStatusBooked, second.Status)

	june, err := suite.svc.ReservationsForMonth(suite.ctx, tenant, "2024-06")
	suite.Require().NoError(err)
	suite.Len(june, 2)

	current, err := suite.svc.ReservationsForMonth(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Len(current, 2)

	_, err = suite.svc.ReservationsForMonth(suite.ctx, tenant, "June")
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestCanceledBookingFreesTheDay() {
	r := suite.book(models.SpaceKiosk, "2024-06-21", "10:00", "14:00")
	canceled, err := suite.svc.CancelReservation(suite.ctx, tenant, morador, r.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ReservationStatusCanceled, canceled.Status)
	suite.NotNil(canceled.CanceledAt)

	suite.book(models.SpaceKiosk, "2024-06-21", "15:00", "18:00")

	_, err = suite.svc.CancelReservation(suite.ctx, tenant, morador, r.ID)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *SchedulingServiceTestSuite) TestResidentsTouchOnlyTheirBookings() {
	r := suite.book(models.SpaceSocialHall, "2024-06-22", "19:00", "23:00")

	_, err := suite.svc.CancelReservation(suite.ctx, tenant, vizinho, r.ID)
	suite.True(apperrors.IsAuthorization(err))

	_, err = suite.svc.UpdateReservation(suite.ctx, tenant, vizinho, r.ID, &service.ReservationRequest{
		Space: models.SpaceSocialHall, Date: "2024-06-22", StartTime: "19:00", EndTime: "23:30", BookedBy: "Caio", Unit: "101",
	})
	suite.True(apperrors.IsAuthorization(err))

	err = suite.svc.DeleteReservation(suite.ctx, tenant, morador, r.ID)
	suite.True(apperrors.IsAuthorization(err))

	updated, err := suite.svc.UpdateReservation(suite.ctx, tenant, morador, r.ID, &service.ReservationRequest{
		Space: models.SpaceSocialHall, Date: "2024-06-22", StartTime: "19:00", EndTime: "23:30", BookedBy: "Lia", Unit: "402",
	})
	suite.Require().NoError(err)
	suite.Equal("23:30", updated.EndTime)
}

func (suite *SchedulingServiceTestSuite) TestCompleteReservationDerivesCleaning() {
	r := suite.book(models.SpaceBarbecue, "2024-06-14", "12:00", "18:00")

	resp, err := suite.svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, &service.CompleteReservationRequest{
		Crew: "Equipe Azul",
		Note: "grelha",
	})
	suite.Require().NoError(err)
	suite.Equal(models.ReservationStatusCompleted, resp.Reservation.Status)
	suite.NotNil(resp.Reservation.CompletedAt)

	cd := resp.CleaningDuty
	suite.Equal(scheduling.CleaningDutyID(r.ID), cd.ID)
	suite.Equal("2024-06-15", cd.ScheduledDate)
	suite.Equal("2024-06-14", cd.SourceReservationDate)
	suite.Equal(models.CleaningStatusPending, cd.Status)
	suite.Equal("Equipe Azul", cd.Crew)
	suite.Equal("08:00", cd.StartTime)
	suite.Equal("402", cd.OriginUnit)

	pending, err := suite.svc.PendingCleaning(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(cd.ID, pending[0].ID)
	suite.Equal(tenant, pending[0].TenantID)

	_, err = suite.svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, nil)
	suite.True(apperrors.IsInvalidTransition(err))

	_, err = suite.svc.UpdateReservation(suite.ctx, tenant, sindico, r.ID, &service.ReservationRequest{
		Space: models.SpaceBarbecue, Date: "2024-06-14", StartTime: "12:00", EndTime: "19:00", BookedBy: "Lia", Unit: "402",
	})
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *SchedulingServiceTestSuite) TestCompleteReservationRejectsBadPlan() {
	r := suite.book(models.SpaceBarbecue, "2024-06-14", "12:00", "18:00")

	_, err := suite.svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, &service.CompleteReservationRequest{StartTime: "11:00"})
	suite.True(apperrors.IsValidation(err))

	reservations, err := suite.svc.ReservationsForMonth(suite.ctx, tenant, "2024-06")
	suite.Require().NoError(err)
	suite.Equal(models.ReservationStatusBooked, reservations[0].Status)

	_, err = suite.svc.CompleteReservation(suite.ctx, tenant, morador, r.ID, nil)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *SchedulingServiceTestSuite) TestDeleteReservationKeepsCleaning() {
	r := suite.book(models.SpaceKiosk, "2024-06-14", "12:00", "18:00")
	_, err := suite.svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.DeleteReservation(suite.ctx, tenant, sindico, r.ID))

	pending, err := suite.svc.PendingCleaning(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Len(pending, 1)

	err = suite.svc.DeleteReservation(suite.ctx, tenant, sindico, r.ID)
	suite.ErrorIs(err, apperrors.ErrReservationNotFound)
}

func (suite *SchedulingServiceTestSuite) TestSequentialDerivationFailureAndReconcile() {
	flaky := &flakyStore{Store: suite.store}
	svc := suite.newService(flaky)

	r := suite.book(models.SpaceDrySauna, "2024-06-14", "17:00", "19:00")

	flaky.failCollection = models.CollectionCleaningDuties
	_, err := svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, nil)
	suite.Require().Error(err)
	var derr *apperrors.DerivationError
	suite.Require().True(errors.As(err, &derr))
	suite.Equal(r.ID, derr.ReservationID)
	suite.Equal(scheduling.CleaningDutyID(r.ID), derr.CleaningDutyID)
	suite.True(apperrors.IsPersistence(err))

	reservations, err := svc.ReservationsForMonth(suite.ctx, tenant, "2024-06")
	suite.Require().NoError(err)
	suite.Equal(models.ReservationStatusCompleted, reservations[0].Status)

	resp, err := svc.ReconcileDerivations(suite.ctx, tenant)
	suite.True(apperrors.IsDerivation(err))
	suite.Empty(resp.Created)

	flaky.failCollection = ""
	resp, err = svc.ReconcileDerivations(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Equal(1, resp.Checked)
	suite.Equal([]string{scheduling.CleaningDutyID(r.ID)}, resp.Created)

	resp, err = svc.ReconcileDerivations(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Empty(resp.Created)

	pending, err := svc.PendingCleaning(suite.ctx, tenant, "sauna")
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("2024-06-15", pending[0].ScheduledDate)
}

func (suite *SchedulingServiceTestSuite) TestSpaceStatus() {
	r := suite.book(models.SpaceSocialHall, "2024-06-15", "09:00", "12:00")
	later := suite.book(models.SpaceKiosk, "2024-06-15", "11:30", "13:00")

	status, err := suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceSocialHall, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(scheduling.Occupied, status.Occupancy.State)
	suite.Require().NotNil(status.Occupancy.Reservation)
	suite.Equal(r.ID, status.Occupancy.Reservation.ID)
	suite.Equal("Salão Social", status.Label)

	status, err = suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceKiosk, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(scheduling.Preparing, status.Occupancy.State)
	suite.Require().NotNil(status.Next)
	suite.Equal(later.ID, status.Next.ID)

	status, err = suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceSocialHall, suite.now.Add(3*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(scheduling.Vacant, status.Occupancy.State)
	suite.Require().NotNil(status.Previous)
	suite.Equal(r.ID, status.Previous.ID)
	suite.Nil(status.Next)

	all, err := suite.svc.SpacesStatus(suite.ctx, tenant, time.Time{})
	suite.Require().NoError(err)
	suite.Len(all, len(models.AllSpaces()))

	_, err = suite.svc.SpaceStatus(suite.ctx, tenant, "pool", time.Time{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestCleaningLifecycle() {
	r := suite.book(models.SpaceBarbecue, "2024-06-14", "12:00", "18:00")
	resp, err := suite.svc.CompleteReservation(suite.ctx, tenant, zelador, r.ID, nil)
	suite.Require().NoError(err)
	id := resp.CleaningDuty.ID

	_, err = suite.svc.AssignCleaningCrew(suite.ctx, tenant, morador, id, &service.AssignCrewRequest{Crew: "Equipe Verde"})
	suite.True(apperrors.IsAuthorization(err))

	_, err = suite.svc.AssignCleaningCrew(suite.ctx, tenant, provider, id, &service.AssignCrewRequest{})
	suite.True(apperrors.IsValidation(err))

	cd, err := suite.svc.AssignCleaningCrew(suite.ctx, tenant, provider, id, &service.AssignCrewRequest{Crew: "Equipe Verde"})
	suite.Require().NoError(err)
	suite.Equal("Equipe Verde", cd.Crew)

	status, err := suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceBarbecue, time.Time{})
	suite.Require().NoError(err)
	suite.Require().NotNil(status.Cleaning)
	suite.Equal(id, status.Cleaning.ID)

	done, err := suite.svc.FinishCleaning(suite.ctx, tenant, provider, id)
	suite.Require().NoError(err)
	suite.Equal(models.CleaningStatusDone, done.Status)
	suite.Equal("Limpa Bem", done.FinishedBy)

	_, err = suite.svc.FinishCleaning(suite.ctx, tenant, provider, id)
	suite.True(apperrors.IsInvalidTransition(err))
	_, err = suite.svc.AssignCleaningCrew(suite.ctx, tenant, provider, id, &service.AssignCrewRequest{Crew: "Outra"})
	suite.True(apperrors.IsInvalidTransition(err))
	_, err = suite.svc.FinishCleaning(suite.ctx, tenant, provider, "missing")
	suite.True(apperrors.IsNotFound(err))

	pending, err := suite.svc.PendingCleaning(suite.ctx, tenant, "")
	suite.Require().NoError(err)
	suite.Empty(pending)

	history, err := suite.svc.CleaningHistory(suite.ctx, tenant, "", "")
	suite.Require().NoError(err)
	suite.Equal("2024-06", history.Month)
	suite.Require().Len(history.Items, 1)
	suite.Equal(1, history.Stats.Total)
	suite.Require().NotNil(history.Stats.MostFrequentSpace)
	suite.Equal(models.SpaceBarbecue, *history.Stats.MostFrequentSpace)
	suite.Len(history.Months, 12)
	suite.Equal("2024-06", history.Months[0])

	filtered, err := suite.svc.CleaningHistory(suite.ctx, tenant, "2024-06", "sauna")
	suite.Require().NoError(err)
	suite.Empty(filtered.Items)
	suite.Nil(filtered.Stats.MostFrequentSpace)
}

func (suite *SchedulingServiceTestSuite) TestSaunaSessionLifecycle() {
	req := &service.StartSaunaSessionRequest{Space: models.SpaceDrySauna, ResidentName: "Lia", Unit: "402"}

	_, err := suite.svc.StartSaunaSession(suite.ctx, tenant, morador, req)
	suite.True(apperrors.IsAuthorization(err))

	session, err := suite.svc.StartSaunaSession(suite.ctx, tenant, zelador, req)
	suite.Require().NoError(err)
	suite.Equal(models.SaunaSessionActive, session.Status)
	suite.Equal("Jorge", session.StartedBy)

	_, err = suite.svc.StartSaunaSession(suite.ctx, tenant, zelador, &service.StartSaunaSessionRequest{
		Space: models.SpaceDrySauna, ResidentName: "Caio", Unit: "101",
	})
	var inUse *apperrors.InUseError
	suite.Require().ErrorAs(err, &inUse)
	suite.Equal(session.ID, inUse.HolderID)

	// a walk-in session occupies an otherwise vacant sauna
	status, err := suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceDrySauna, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(scheduling.Occupied, status.Occupancy.State)
	suite.Require().NotNil(status.Occupancy.Session)
	suite.Equal(session.ID, status.Occupancy.Session.ID)
	suite.Nil(status.Occupancy.Reservation)

	suite.now = suite.now.Add(45 * time.Minute)
	done, err := suite.svc.FinishSaunaSession(suite.ctx, tenant, zelador, session.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SaunaSessionDone, done.Status)
	suite.Require().NotNil(done.EndedAt)
	suite.Equal(suite.now.UTC(), *done.EndedAt)

	_, err = suite.svc.FinishSaunaSession(suite.ctx, tenant, zelador, session.ID)
	suite.True(apperrors.IsInvalidTransition(err))
	_, err = suite.svc.FinishSaunaSession(suite.ctx, tenant, zelador, "missing")
	suite.ErrorIs(err, apperrors.ErrSaunaSessionNotFound)

	status, err = suite.svc.SpaceStatus(suite.ctx, tenant, models.SpaceDrySauna, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(scheduling.Vacant, status.Occupancy.State)

	overview, err := suite.svc.SaunaOverview(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Empty(overview.Active)
	suite.Require().Len(overview.Recent, 1)
	suite.Equal(session.ID, overview.Recent[0].ID)
}

func (suite *SchedulingServiceTestSuite) TestSaunaSessionBlockedByReservation() {
	r := suite.book(models.SpaceSteamSauna, "2024-06-15", "09:00", "11:00")

	_, err := suite.svc.StartSaunaSession(suite.ctx, tenant, zelador, &service.StartSaunaSessionRequest{
		Space: models.SpaceSteamSauna, ResidentName: "Caio", Unit: "101",
	})
	var inUse *apperrors.InUseError
	suite.Require().ErrorAs(err, &inUse)
	suite.Equal("reservation", inUse.HolderKind)
	suite.Equal(r.ID, inUse.HolderID)

	_, err = suite.svc.StartSaunaSession(suite.ctx, tenant, zelador, &service.StartSaunaSessionRequest{
		Space: models.SpaceKiosk, ResidentName: "Caio", Unit: "101",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchedulingServiceTestSuite) TestWatchServesLiveState() {
	view, err := suite.svc.Watch(suite.ctx, tenant)
	suite.Require().NoError(err)
	defer view.Close()

	suite.Eventually(func() bool {
		_, ok := view.State()
		return ok
	}, time.Second, 10*time.Millisecond)

	again, err := suite.svc.Watch(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Same(view, again)

	d := suite.recurring("PORTAO", models.ShiftTypeNight, 6)
	suite.Eventually(func() bool {
		st, ok := view.State()
		return ok && len(st.Duties) == 1 && st.Duties[0].ID == d.ID
	}, time.Second, 10*time.Millisecond)

	suite.Eventually(func() bool {
		duties, err := suite.svc.ListDuties(suite.ctx, tenant)
		return err == nil && len(duties) == 1
	}, time.Second, 10*time.Millisecond)

	view.Close()
	_, ok := view.State()
	suite.False(ok)

	fresh, err := suite.svc.Watch(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.NotSame(view, fresh)
	fresh.Close()
}

func (suite *SchedulingServiceTestSuite) TestWatchStopsWithContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	view, err := suite.svc.Watch(ctx, tenant)
	suite.Require().NoError(err)
	defer view.Close()

	suite.Eventually(func() bool {
		_, ok := view.State()
		return ok
	}, time.Second, 10*time.Millisecond)

	cancel()
	suite.Eventually(func() bool {
		_, ok := view.State()
		return !ok
	}, time.Second, 10*time.Millisecond)

	// reads fall through to the store once the view is gone
	suite.recurring("PORTAO", models.ShiftTypeNight, 6)
	duties, err := suite.svc.ListDuties(suite.ctx, tenant)
	suite.Require().NoError(err)
	suite.Len(duties, 1)

	fresh, err := suite.svc.Watch(suite.ctx, tenant)
	suite.Require().NoError(err)
	defer fresh.Close()
	suite.NotSame(view, fresh)
}

func TestSchedulingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulingServiceTestSuite))
}

func TestReservationRequestValidation(t *testing.T) {
	svc := service.NewSchedulingService(store.NewMemoryStore(), validator.New(), service.SchedulingOptions{})
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, tenant, morador, &service.ReservationRequest{
		Space: models.SpaceKiosk, Date: "2024-06-20", StartTime: "14:00", EndTime: "12:00", BookedBy: "Lia", Unit: "402",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateReservation(ctx, tenant, morador, &service.ReservationRequest{
		Space: models.SpaceKiosk, Date: "2024-06-20", StartTime: "10:00", EndTime: "12:00", Unit: "402",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateReservation(ctx, tenant, provider, &service.ReservationRequest{
		Space: models.SpaceKiosk, Date: "2024-06-20", StartTime: "10:00", EndTime: "12:00", BookedBy: "Lia", Unit: "402",
	})
	assert.True(t, apperrors.IsAuthorization(err))
}
