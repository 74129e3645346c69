package handlers

import (
	"net/http"

	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SaunaHandler handles HTTP requests for walk-in sauna sessions
type SaunaHandler struct {
	scheduling service.SchedulingServiceInterface
}

// NewSaunaHandler creates a new sauna handler
func NewSaunaHandler(scheduling service.SchedulingServiceInterface) *SaunaHandler {
	return &SaunaHandler{
		scheduling: scheduling,
	}
}

// Overview handles GET /sauna
func (h *SaunaHandler) Overview(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	overview, err := h.scheduling.SaunaOverview(c, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// StartSession handles POST /sauna/sessions
func (h *SaunaHandler) StartSession(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	var req service.StartSaunaSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.scheduling.StartSaunaSession(c, tenantID, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// FinishSession handles POST /sauna/sessions/:id/finish
func (h *SaunaHandler) FinishSession(c *gin.Context) {
	actor, tenantID, ok := scope(c)
	if !ok {
		return
	}

	session, err := h.scheduling.FinishSaunaSession(c, tenantID, actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
