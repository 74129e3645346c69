package scheduling

import (
	"testing"
	"time"

	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaning(id string, space models.SpaceType, scheduled string, status models.CleaningStatus) models.CleaningDuty {
	return models.CleaningDuty{
		ID:            id,
		ReservationID: "res-" + id,
		Space:         space,
		ScheduledDate: scheduled,
		Status:        status,
		StartTime:     "08:00",
		EndTime:       "10:00",
	}
}

func finishedCleaning(id string, space models.SpaceType, scheduled string, at time.Time) models.CleaningDuty {
	d := cleaning(id, space, scheduled, models.CleaningStatusDone)
	d.FinishedAt = &at
	return d
}

func TestSpawnSchedulesNextCalendarDay(t *testing.T) {
	cases := map[string]string{
		"2024-01-31": "2024-02-01",
		"2024-02-29": "2024-03-01",
		"2024-12-31": "2025-01-01",
		"2024-06-15": "2024-06-16",
	}
	for date, want := range cases {
		res := models.Reservation{ID: "r-" + date, Space: models.SpaceKiosk, Date: date, BookedBy: "A", Unit: "7"}
		cd, err := Spawn(res, CleaningWindow{}, t0)
		require.NoError(t, err)
		assert.Equal(t, want, cd.ScheduledDate, date)
		assert.Equal(t, date, cd.SourceReservationDate)
		assert.Equal(t, DefaultCleaningWindow.Start, cd.StartTime)
		assert.Equal(t, DefaultCleaningWindow.End, cd.EndTime)
	}

	_, err := Spawn(models.Reservation{ID: "bad", Date: "2024-02-30"}, DefaultCleaningWindow, t0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSpawnDefaultsEachWindowEnd(t *testing.T) {
	res := models.Reservation{ID: "r-1", Space: models.SpaceSocialHall, Date: "2024-06-15"}

	cd, err := Spawn(res, CleaningWindow{Start: "07:00"}, t0)
	require.NoError(t, err)
	assert.Equal(t, "07:00", cd.StartTime)
	assert.Equal(t, DefaultCleaningWindow.End, cd.EndTime)

	cd, err = Spawn(res, CleaningWindow{End: "12:00"}, t0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCleaningWindow.Start, cd.StartTime)
	assert.Equal(t, "12:00", cd.EndTime)

	_, err = Spawn(res, CleaningWindow{Start: "11:00"}, t0)
	assert.True(t, apperrors.IsValidation(err))

	_, err = Spawn(res, CleaningWindow{Start: "8h", End: "10:00"}, t0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCleaningDutyIDIsDeterministic(t *testing.T) {
	assert.Equal(t, CleaningDutyID("r-1"), CleaningDutyID("r-1"))
	assert.NotEqual(t, CleaningDutyID("r-1"), CleaningDutyID("r-2"))
}

func TestApplyPlan(t *testing.T) {
	cd := cleaning("c", models.SpaceKiosk, "2024-06-16", models.CleaningStatusPending)

	planned, err := ApplyPlan(cd, CleaningPlan{Crew: " Equipe Azul ", StartTime: "09:00", Note: "grill"})
	require.NoError(t, err)
	assert.Equal(t, "Equipe Azul", planned.Crew)
	assert.Equal(t, "09:00", planned.StartTime)
	assert.Equal(t, "10:00", planned.EndTime)
	assert.Equal(t, "grill", planned.Note)

	_, err = ApplyPlan(cd, CleaningPlan{StartTime: "11:00"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestFinish(t *testing.T) {
	board := NewCleaningBoard([]models.CleaningDuty{
		cleaning("p", models.SpaceKiosk, "2024-06-16", models.CleaningStatusPending),
		finishedCleaning("d", models.SpaceKiosk, "2024-06-16", t0),
	})
	actor := Actor{ID: "u-9", Name: "Crew Lead", Role: RolePrestador}

	done, err := board.Finish("p", actor, t0)
	require.NoError(t, err)
	assert.Equal(t, models.CleaningStatusDone, done.Status)
	assert.Equal(t, "Crew Lead", done.FinishedBy)
	require.NotNil(t, done.FinishedAt)
	assert.Equal(t, t0, *done.FinishedAt)

	_, err = board.Finish("d", actor, t0)
	assert.True(t, apperrors.IsInvalidTransition(err))

	_, err = board.Finish("missing", actor, t0)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAssignCrew(t *testing.T) {
	board := NewCleaningBoard([]models.CleaningDuty{
		cleaning("p", models.SpaceKiosk, "2024-06-16", models.CleaningStatusPending),
		finishedCleaning("d", models.SpaceKiosk, "2024-06-16", t0),
	})

	cd, err := board.AssignCrew("p", "Equipe Verde")
	require.NoError(t, err)
	assert.Equal(t, "Equipe Verde", cd.Crew)

	_, err = board.AssignCrew("p", " ")
	assert.True(t, apperrors.IsValidation(err))

	_, err = board.AssignCrew("d", "Equipe Verde")
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestPendingFilterAndOrder(t *testing.T) {
	late := cleaning("late", models.SpaceBarbecue, "2024-06-20", models.CleaningStatusPending)
	early := cleaning("early", models.SpaceDrySauna, "2024-06-16", models.CleaningStatusPending)
	early.Crew = "Equipe Azul"
	board := NewCleaningBoard([]models.CleaningDuty{
		late,
		early,
		finishedCleaning("done", models.SpaceBarbecue, "2024-06-10", t0),
	})

	all := board.Pending("")
	require.Len(t, all, 2)
	assert.Equal(t, "early", all[0].ID)

	byCrew := board.Pending("azul")
	require.Len(t, byCrew, 1)
	assert.Equal(t, "early", byCrew[0].ID)

	byLabel := board.Pending("churras")
	require.Len(t, byLabel, 1)
	assert.Equal(t, "late", byLabel[0].ID)

	assert.Empty(t, board.Pending("pool"))
}

func TestHistoryForMonth(t *testing.T) {
	board := NewCleaningBoard([]models.CleaningDuty{
		finishedCleaning("a", models.SpaceSocialHall, "2024-06-02", t0),
		finishedCleaning("b", models.SpaceSocialHall, "2024-06-20", t0),
		finishedCleaning("c", models.SpaceKiosk, "2024-06-20", t0.Add(time.Hour)),
		finishedCleaning("july", models.SpaceKiosk, "2024-07-01", t0),
		cleaning("pending", models.SpaceKiosk, "2024-06-21", models.CleaningStatusPending),
	})

	history, err := board.HistoryForMonth("2024-06", "")
	require.NoError(t, err)
	ids := []string{}
	for _, d := range history {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)

	filtered, err := board.HistoryForMonth("2024-06", "quiosque")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "c", filtered[0].ID)

	_, err = board.HistoryForMonth("06/2024", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestMonthlyStats(t *testing.T) {
	history := []models.CleaningDuty{
		finishedCleaning("1", models.SpaceSocialHall, "2024-06-20", t0),
		finishedCleaning("2", models.SpaceKiosk, "2024-06-18", t0),
		finishedCleaning("3", models.SpaceSocialHall, "2024-06-10", t0),
		finishedCleaning("4", models.SpaceSocialHall, "2024-06-02", t0),
	}

	stats := MonthlyStats(history)
	assert.Equal(t, 4, stats.Total)
	require.NotNil(t, stats.MostFrequentSpace)
	assert.Equal(t, models.SpaceSocialHall, *stats.MostFrequentSpace)
	assert.Equal(t, 3, stats.BySpace[models.SpaceSocialHall])
	assert.Equal(t, 1, stats.BySpace[models.SpaceKiosk])
}

func TestMonthlyStatsTieGoesToFirstSeen(t *testing.T) {
	history := []models.CleaningDuty{
		finishedCleaning("1", models.SpaceKiosk, "2024-06-20", t0),
		finishedCleaning("2", models.SpaceSocialHall, "2024-06-18", t0),
		finishedCleaning("3", models.SpaceSocialHall, "2024-06-10", t0),
		finishedCleaning("4", models.SpaceKiosk, "2024-06-02", t0),
	}
	stats := MonthlyStats(history)
	require.NotNil(t, stats.MostFrequentSpace)
	assert.Equal(t, models.SpaceKiosk, *stats.MostFrequentSpace)

	empty := MonthlyStats(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Nil(t, empty.MostFrequentSpace)
}

func TestForReservation(t *testing.T) {
	board := NewCleaningBoard([]models.CleaningDuty{cleaning("x", models.SpaceKiosk, "2024-06-16", models.CleaningStatusPending)})
	found := board.ForReservation("res-x")
	require.NotNil(t, found)
	assert.Equal(t, "x", found.ID)
	assert.Nil(t, board.ForReservation("res-y"))
}
