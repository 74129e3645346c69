package handlers_test

import (
	"net/http"
	"testing"

	"condo-ops-backend/internal/api/handlers"
	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/mocks"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DutyHandlerTestSuite defines the test suite for DutyHandler
type DutyHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockSchedulingServiceInterface
	handler *handlers.DutyHandler
	router  *gin.Engine
}

func (suite *DutyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockSchedulingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDutyHandler(suite.mockSvc)
	suite.router = suite.routes(&sindico)
}

func (suite *DutyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DutyHandlerTestSuite) routes(actor *scheduling.Actor) *gin.Engine {
	router := newRouter(actor)
	router.GET("/board", suite.handler.GetBoard)
	router.GET("/duties", suite.handler.ListDuties)
	router.POST("/duties", suite.handler.CreateDuty)
	router.PUT("/duties/:id", suite.handler.UpdateDuty)
	router.PATCH("/duties/:id/active", suite.handler.SetDutyActive)
	router.DELETE("/duties/:id", suite.handler.DeleteDuty)
	router.POST("/duties/:id/toggle", suite.handler.ToggleDuty)
	return router
}

func (suite *DutyHandlerTestSuite) TestGetBoard_PassesDate() {
	board := &service.BoardResponse{
		Board: scheduling.Board{
			Date:         "2024-06-15",
			CurrentShift: models.ShiftTypeDay,
			Day:          []scheduling.BoardItem{},
			Night:        []scheduling.BoardItem{},
			Pending:      2,
		},
	}
	suite.mockSvc.EXPECT().TodayBoard(gomock.Any(), testTenant, "2024-06-15").Return(board, nil)

	w := doJSON(suite.router, http.MethodGet, "/board?date=2024-06-15", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	got := decode[map[string]any](w)
	assert.Equal(suite.T(), "2024-06-15", got["date"])
	assert.Equal(suite.T(), "day", got["current_shift"])
	assert.EqualValues(suite.T(), 2, got["pending"])
}

func (suite *DutyHandlerTestSuite) TestListDuties_Success() {
	duties := []models.Duty{{ID: "d1", Title: "Lixo"}, {ID: "d2", Title: "Portaria"}}
	suite.mockSvc.EXPECT().ListDuties(gomock.Any(), testTenant).Return(duties, nil)

	w := doJSON(suite.router, http.MethodGet, "/duties", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	got := decode[struct {
		Duties []models.Duty `json:"duties"`
		Total  int           `json:"total"`
	}](w)
	assert.Equal(suite.T(), 2, got.Total)
	assert.Equal(suite.T(), "Lixo", got.Duties[0].Title)
}

func (suite *DutyHandlerTestSuite) TestCreateDuty_Created() {
	suite.mockSvc.EXPECT().
		CreateDuty(gomock.Any(), testTenant, sindico, gomock.Any()).
		DoAndReturn(func(_ any, _ string, _ scheduling.Actor, req *service.CreateDutyRequest) (*models.Duty, error) {
			assert.Equal(suite.T(), "Regar jardim", req.Title)
			assert.Equal(suite.T(), []int{1, 3}, req.Weekdays)
			return &models.Duty{ID: "d9", Title: req.Title, Kind: req.Kind, Active: true}, nil
		})

	w := doJSON(suite.router, http.MethodPost, "/duties", map[string]any{
		"title":    "Regar jardim",
		"kind":     "recurring",
		"shift":    "day",
		"weekdays": []int{1, 3},
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "d9", decode[models.Duty](w).ID)
}

func (suite *DutyHandlerTestSuite) TestCreateDuty_MalformedBody() {
	w := doJSON(suite.router, http.MethodPost, "/duties", "{not json")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), decode[handlers.ErrorResponse](w).Error, "Invalid request body")
}

func (suite *DutyHandlerTestSuite) TestCreateDuty_ValidationError() {
	suite.mockSvc.EXPECT().
		CreateDuty(gomock.Any(), testTenant, sindico, gomock.Any()).
		Return(nil, apperrors.NewValidationError("weekdays", apperrors.ErrInvalidWeekdays.Error()))

	w := doJSON(suite.router, http.MethodPost, "/duties", map[string]any{"title": "x", "kind": "recurring", "shift": "day"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "weekdays", decode[handlers.ErrorResponse](w).Field)
}

func (suite *DutyHandlerTestSuite) TestUpdateDuty_NotFound() {
	suite.mockSvc.EXPECT().
		UpdateDuty(gomock.Any(), testTenant, sindico, "missing", gomock.Any()).
		Return(nil, apperrors.ErrDutyNotFound)

	w := doJSON(suite.router, http.MethodPut, "/duties/missing", map[string]any{"title": "x"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *DutyHandlerTestSuite) TestSetDutyActive_RequiresFlag() {
	w := doJSON(suite.router, http.MethodPatch, "/duties/d1/active", map[string]any{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *DutyHandlerTestSuite) TestSetDutyActive_Pause() {
	suite.mockSvc.EXPECT().
		SetDutyActive(gomock.Any(), testTenant, sindico, "d1", false).
		Return(&models.Duty{ID: "d1", Active: false}, nil)

	w := doJSON(suite.router, http.MethodPatch, "/duties/d1/active", map[string]any{"active": false})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.False(suite.T(), decode[models.Duty](w).Active)
}

func (suite *DutyHandlerTestSuite) TestDeleteDuty_NoContent() {
	suite.mockSvc.EXPECT().DeleteDuty(gomock.Any(), testTenant, sindico, "d1").Return(nil)

	w := doJSON(suite.router, http.MethodDelete, "/duties/d1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *DutyHandlerTestSuite) TestDeleteDuty_Forbidden() {
	suite.mockSvc.EXPECT().DeleteDuty(gomock.Any(), testTenant, sindico, "d1").Return(apperrors.ErrInsufficientRole)

	w := doJSON(suite.router, http.MethodDelete, "/duties/d1", nil)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *DutyHandlerTestSuite) TestToggleDuty_WithoutBody() {
	suite.mockSvc.EXPECT().
		ToggleDutyCompletion(gomock.Any(), testTenant, sindico, "d1", &service.ToggleDutyRequest{}).
		Return(&service.ToggleDutyResponse{Duty: models.Duty{ID: "d1"}, DateKey: "2024-06-15", Done: true}, nil)

	w := doJSON(suite.router, http.MethodPost, "/duties/d1/toggle", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	got := decode[service.ToggleDutyResponse](w)
	assert.True(suite.T(), got.Done)
	assert.Equal(suite.T(), "2024-06-15", got.DateKey)
}

func (suite *DutyHandlerTestSuite) TestToggleDuty_ChunkedDateKey() {
	suite.mockSvc.EXPECT().
		ToggleDutyCompletion(gomock.Any(), testTenant, sindico, "d1", &service.ToggleDutyRequest{DateKey: "2024-06-14"}).
		Return(&service.ToggleDutyResponse{Duty: models.Duty{ID: "d1"}, DateKey: "2024-06-14"}, nil)

	w := doChunked(suite.router, http.MethodPost, "/duties/d1/toggle", `{"date_key":"2024-06-14"}`)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "2024-06-14", decode[service.ToggleDutyResponse](w).DateKey)
}

func (suite *DutyHandlerTestSuite) TestToggleDuty_NotDueIsConflict() {
	suite.mockSvc.EXPECT().
		ToggleDutyCompletion(gomock.Any(), testTenant, sindico, "d1", &service.ToggleDutyRequest{DateKey: "2024-06-16"}).
		Return(nil, apperrors.NewInvalidTransitionError("duty", "d1", "not due", "complete"))

	w := doJSON(suite.router, http.MethodPost, "/duties/d1/toggle", map[string]any{"date_key": "2024-06-16"})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *DutyHandlerTestSuite) TestMissingActor_Unauthorized() {
	router := suite.routes(nil)

	w := doJSON(router, http.MethodGet, "/duties", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestDutyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DutyHandlerTestSuite))
}
