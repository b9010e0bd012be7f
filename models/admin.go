package models

import "github.com/golang-jwt/jwt/v5"

type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
