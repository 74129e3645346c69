package handlers

import (
	"errors"
	"io"
	"net/http"

	"condo-ops-backend/internal/auth"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/scheduling"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error          string `json:"error"`
	Field          string `json:"field,omitempty"`
	ExistingID     string `json:"existing_id,omitempty"`
	ReservationID  string `json:"reservation_id,omitempty"`
	CleaningDutyID string `json:"cleaning_duty_id,omitempty"`
}

// respondError maps domain errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var (
		derr     *apperrors.DerivationError
		conflict *apperrors.ConflictError
		inUse    *apperrors.InUseError
		verr     *apperrors.ValidationError
	)

	switch {
	case errors.As(err, &derr):
		logger.WithContext(c).WithError(err).Error("Cleaning duty derivation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:          err.Error(),
			ReservationID:  derr.ReservationID,
			CleaningDutyID: derr.CleaningDutyID,
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: verr.Field})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), ExistingID: conflict.ExistingID})
	case errors.As(err, &inUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), ExistingID: inUse.HolderID})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidTransition(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsPersistence(err):
		logger.WithContext(c).WithError(err).Error("Store unavailable")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "store unavailable"})
	default:
		logger.WithContext(c).WithError(err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
}

// bindOptionalJSON binds a JSON body when one is sent. An empty body,
// chunked or not, leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// scope returns the acting user and tenant set by the auth middleware
func scope(c *gin.Context) (scheduling.Actor, string, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrActorNotInCtx.Error()})
		return scheduling.Actor{}, "", false
	}
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrActorNotInCtx.Error()})
		return scheduling.Actor{}, "", false
	}
	return actor, tenantID, true
}
