package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the JWT claims expected on authenticated requests.
// Subject carries the actor id attached to audit fields.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
