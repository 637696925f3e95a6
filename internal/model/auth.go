package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims identifying the assessment taker
type UserClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenRequest is the body of POST /v1/auth/token
type TokenRequest struct {
	UserID string `json:"userId" validate:"required,max=64"`
	Name   string `json:"name,omitempty" validate:"omitempty,max=50"`
}

// TokenResponse is returned after a token is issued
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
