package model

import "github.com/golang-jwt/jwt/v5"

// TokenType discriminates access tokens from refresh tokens. The two kinds
// share a payload shape but differ in lifetime and privilege, so the kind is
// signed into the claims and checked on every verification.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type AppClaims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}
