package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by admin tokens.
type Claims struct {
	Subject string   // Admin identity, recorded as reviewed_by / performed_by.
	Roles   []string
	jwt.RegisteredClaims
}

// TokenService validates admin JWTs issued by the upstream identity provider.
// The dedup core never issues tokens itself.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
