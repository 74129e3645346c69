package handlers

import (
	"net/http"

	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DutyHandler handles HTTP requests for duties and the daily board
type DutyHandler struct {
	scheduling service.SchedulingServiceInterface
}

// NewDutyHandler creates a new duty handler
func NewDutyHandler(scheduling service.SchedulingServiceInterface) *DutyHandler {
	return &DutyHandler{
		scheduling: scheduling,
	}
}

// SetDutyActiveRequest pauses or resumes a duty
type SetDutyActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// GetBoard handles GET /board?date=YYYY-MM-DD
func (h *DutyHandler) GetBoard(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	board, err := h.scheduling.TodayBoard(c, tenantID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ListDuties handles GET /duties
func (h *DutyHandler) ListDuties(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	duties, err := h.scheduling.ListDuties(c, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"duties": duties, "total": len(duties)})
}

// CreateDuty handles POST /duties
func (h *DutyHandler) CreateDuty(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.CreateDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	duty, err := h.scheduling.CreateDuty(c, tenantID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, duty)
}

// UpdateDuty handles PUT /duties/:id
func (h *DutyHandler) UpdateDuty(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.UpdateDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	duty, err := h.scheduling.UpdateDuty(c, tenantID, actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, duty)
}

// SetDutyActive handles PATCH /duties/:id/active
func (h *DutyHandler) SetDutyActive(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req SetDutyActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	duty, err := h.scheduling.SetDutyActive(c, tenantID, actor, c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, duty)
}

// DeleteDuty handles DELETE /duties/:id
func (h *DutyHandler) DeleteDuty(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	if err := h.scheduling.DeleteDuty(c, tenantID, actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleDuty handles POST /duties/:id/toggle. The body is optional.
func (h *DutyHandler) ToggleDuty(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.ToggleDutyRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.scheduling.ToggleDutyCompletion(c, tenantID, actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
