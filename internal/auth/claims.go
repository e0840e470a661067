package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// Multi-tenant invariant: ChurchID must be present on every token; all
// dashboard reads are scoped to it server-side.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string    `json:"user_id"`
	ChurchID  string    `json:"church_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
}
