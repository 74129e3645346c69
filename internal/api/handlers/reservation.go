package handlers

import (
	"net/http"
	"time"

	"condo-ops-backend/internal/database/models"
	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationHandler handles HTTP requests for space reservations
type ReservationHandler struct {
	scheduling service.SchedulingServiceInterface
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(scheduling service.SchedulingServiceInterface) *ReservationHandler {
	return &ReservationHandler{
		scheduling: scheduling,
	}
}

// ListReservations handles GET /reservations?month=YYYY-MM
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	reservations, err := h.scheduling.ReservationsForMonth(c, tenantID, c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "total": len(reservations)})
}

// CreateReservation handles POST /reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	reservation, err := h.scheduling.CreateReservation(c, tenantID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles PUT /reservations/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	reservation, err := h.scheduling.UpdateReservation(c, tenantID, actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CompleteReservation handles POST /reservations/:id/complete. The body is optional.
func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.CompleteReservationRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.scheduling.CompleteReservation(c, tenantID, actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelReservation handles POST /reservations/:id/cancel
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	reservation, err := h.scheduling.CancelReservation(c, tenantID, actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation handles DELETE /reservations/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	if err := h.scheduling.DeleteReservation(c, tenantID, actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SpaceStatus handles GET /spaces/:space/status?at=RFC3339
func (h *ReservationHandler) SpaceStatus(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}
	at, ok := parseInstant(c)
	if !ok {
		return
	}

	status, err := h.scheduling.SpaceStatus(c, tenantID, models.SpaceType(c.Param("space")), at)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SpacesStatus handles GET /spaces/status?at=RFC3339
func (h *ReservationHandler) SpacesStatus(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}
	at, ok := parseInstant(c)
	if !ok {
		return
	}

	statuses, err := h.scheduling.SpacesStatus(c, tenantID, at)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": statuses})
}

// parseInstant reads the optional "at" query parameter. Zero means now.
func parseInstant(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return time.Time{}, true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at must be an RFC3339 timestamp", Field: "at"})
		return time.Time{}, false
	}
	return at, true
}
