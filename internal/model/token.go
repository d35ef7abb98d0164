package model

import "time"

// TokenManager issues and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(payload TokenPayload) (string, error)
	GenerateRefreshToken(payload TokenPayload) (string, error)
	GenerateTokenPair(payload TokenPayload) (TokenPair, error)
	VerifyAccessToken(token string) (TokenClaims, error)
	VerifyRefreshToken(token string) (TokenClaims, error)
	DecodeToken(token string) (TokenClaims, error)
}

// TokenType distinguishes the two signing contexts.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPayload is the identity carried by every token.
type TokenPayload struct {
	UserID string
	Email  string
	Role   Role
}

// PayloadFor builds the token payload from the current user record.
func PayloadFor(u User) TokenPayload {
	return TokenPayload{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// TokenClaims is a parsed token.
type TokenClaims struct {
	TokenPayload
	Type      TokenType
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is returned by every successful sign-in.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    string
}

// AuthResult is a user with a freshly issued token pair.
type AuthResult struct {
	User   User
	Tokens TokenPair
}
