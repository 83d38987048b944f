package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is what the API trusts from a staff bearer token: the acting
// user. Tenant and location access are resolved per request from grants.
type Claims struct {
	ActorID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService verifies access tokens minted by the external auth service.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
