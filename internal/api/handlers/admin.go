package handlers

import (
	"net/http"

	"condo-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles maintenance endpoints
type AdminHandler struct {
	scheduling service.SchedulingServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(scheduling service.SchedulingServiceInterface) *AdminHandler {
	return &AdminHandler{
		scheduling: scheduling,
	}
}

// Reconcile handles POST /admin/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	_, tenantID, ok := scope(c)
	if !ok {
		return
	}

	resp, err := h.scheduling.ReconcileDerivations(c, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
