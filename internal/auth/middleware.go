package auth

import (
	"net/http"
	"strings"

	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/scheduling"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth
const (
	ClaimsKey   = "auth_claims"
	TenantIDKey = "tenant_id"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and stores the actor on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error(), "details": err.Error()})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TenantIDKey, claims.TenantID)
		c.Set(logger.ActorIDKey, claims.ActorID)
		c.Set(logger.ActorRoleKey, string(claims.Role))

		c.Next()
	}
}

// RequireCapability rejects actors whose role lacks capability
func RequireCapability(capability scheduling.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrActorNotInCtx.Error()})
			return
		}
		if !actor.Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
			return
		}
		c.Next()
	}
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// GetActor is a helper function to extract the acting user from context
func GetActor(c *gin.Context) (scheduling.Actor, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return scheduling.Actor{}, false
	}
	return claims.Actor(), true
}

// GetTenantID is a helper function to extract the tenant from context
func GetTenantID(c *gin.Context) (string, bool) {
	tenantID, exists := c.Get(TenantIDKey)
	if !exists {
		return "", false
	}
	id, ok := tenantID.(string)
	return id, ok && id != ""
}
