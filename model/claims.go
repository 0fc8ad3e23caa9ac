package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the token payload. UserID is duplicated into the registered
// subject claim.
type AppClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
