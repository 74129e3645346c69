package auth

import (
	"fmt"
	"time"

	"condo-ops-backend/internal/scheduling"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates actor tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	ActorID  string          `json:"actor_id"`
	Name     string          `json:"name"`
	Role     scheduling.Role `json:"role"`
	TenantID string          `json:"tenant_id"`
	jwt.RegisteredClaims
}

// Actor returns the scheduling actor carried by the claims
func (c *AuthClaims) Actor() scheduling.Actor {
	return scheduling.Actor{ID: c.ActorID, Name: c.Name, Role: c.Role}
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT creates a token for actor scoped to tenantID
func (s *AuthService) GenerateJWT(actor scheduling.Actor, tenantID string) (string, error) {
	if !actor.Role.IsValid() {
		return "", fmt.Errorf("unknown role %q", actor.Role)
	}
	if actor.ID == "" || tenantID == "" {
		return "", fmt.Errorf("actor id and tenant are required")
	}

	now := s.now()
	claims := &AuthClaims{
		ActorID:  actor.ID,
		Name:     actor.Name,
		Role:     actor.Role,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   actor.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	if claims.ActorID == "" || claims.TenantID == "" {
		return nil, fmt.Errorf("token lacks actor or tenant")
	}
	return claims, nil
}
