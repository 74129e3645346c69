package handlers

import (
	"net/http"

	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CleaningHandler handles HTTP requests for derived cleaning duties
type CleaningHandler struct {
	scheduling service.SchedulingServiceInterface
}

// NewCleaningHandler creates a new cleaning handler
func NewCleaningHandler(scheduling service.SchedulingServiceInterface) *CleaningHandler {
	return &CleaningHandler{
		scheduling: scheduling,
	}
}

// ListPending handles GET /cleaning/pending?q=
func (h *CleaningHandler) ListPending(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	pending, err := h.scheduling.PendingCleaning(c, tenantID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaning_duties": pending, "total": len(pending)})
}

// Finish handles POST /cleaning/:id/finish
func (h *CleaningHandler) Finish(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	duty, err := h.scheduling.FinishCleaning(c, tenantID, actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, duty)
}

// AssignCrew handles PUT /cleaning/:id/crew
func (h *CleaningHandler) AssignCrew(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.AssignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	duty, err := h.scheduling.AssignCleaningCrew(c, tenantID, actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, duty)
}

// History handles GET /cleaning/history?month=YYYY-MM&q=
func (h *CleaningHandler) History(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	history, err := h.scheduling.CleaningHistory(c, tenantID, c.Query("month"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
