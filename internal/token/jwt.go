package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/wedwisely-server/internal/model"
)

const (
	DefaultIssuer   = "wedwisely-backend"
	DefaultAudience = "wedwisely-users"
)

// Claims represents JWT claims with the user payload and token type.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
}

// Options configures the token manager.
type Options struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	// ExpiresIn is the access lifetime as reported to clients, e.g. "7d".
	ExpiresIn string
	Issuer    string
	Audience  string
}

// Option customizes a JWT manager.
type Option func(*JWT)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

type signingContext struct {
	key []byte
	ttl time.Duration
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC. Access and refresh
// tokens are signed in separate contexts; both fall back to the access secret
// when no refresh secret is configured.
type JWT struct {
	access    signingContext
	refresh   signingContext
	issuer    string
	audience  string
	expiresIn string
	now       func() time.Time
}

// NewJWT creates a new JWT token manager.
func NewJWT(opts Options, optFns ...Option) *JWT {
	refreshSecret := opts.RefreshSecret
	if refreshSecret == "" {
		refreshSecret = opts.AccessSecret
	}
	if opts.Issuer == "" {
		opts.Issuer = DefaultIssuer
	}
	if opts.Audience == "" {
		opts.Audience = DefaultAudience
	}
	if opts.ExpiresIn == "" {
		opts.ExpiresIn = opts.AccessTTL.String()
	}

	j := &JWT{
		access:    signingContext{key: []byte(opts.AccessSecret), ttl: opts.AccessTTL},
		refresh:   signingContext{key: []byte(refreshSecret), ttl: opts.RefreshTTL},
		issuer:    opts.Issuer,
		audience:  opts.Audience,
		expiresIn: opts.ExpiresIn,
		now:       time.Now,
	}
	for _, fn := range optFns {
		fn(j)
	}
	return j
}

// GenerateAccessToken creates an access token for the payload.
func (j *JWT) GenerateAccessToken(payload model.TokenPayload) (string, error) {
	tokenString, err := j.sign(j.access, payload, model.TokenTypeAccess)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token for the payload.
func (j *JWT) GenerateRefreshToken(payload model.TokenPayload) (string, error) {
	tokenString, err := j.sign(j.refresh, payload, model.TokenTypeRefresh)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return tokenString, nil
}

// GenerateTokenPair issues both tokens for the payload.
func (j *JWT) GenerateTokenPair(payload model.TokenPayload) (model.TokenPair, error) {
	access, err := j.GenerateAccessToken(payload)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := j.GenerateRefreshToken(payload)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    j.expiresIn,
	}, nil
}

// VerifyAccessToken validates an access token and returns its claims.
func (j *JWT) VerifyAccessToken(tokenString string) (model.TokenClaims, error) {
	return j.verify(j.access, tokenString, model.TokenTypeAccess)
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (j *JWT) VerifyRefreshToken(tokenString string) (model.TokenClaims, error) {
	return j.verify(j.refresh, tokenString, model.TokenTypeRefresh)
}

// DecodeToken returns the claims without checking the signature or expiry.
// The result must not be used for authorization.
func (j *JWT) DecodeToken(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return model.TokenClaims{}, fmt.Errorf("invalid token format: %w", err)
	}
	return toModel(claims), nil
}

func (j *JWT) sign(sc signingContext, payload model.TokenPayload, typ model.TokenType) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   payload.UserID,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sc.ttl)),
		},
		UserID:    payload.UserID,
		Email:     payload.Email,
		Role:      string(payload.Role),
		TokenType: string(typ),
	})
	return token.SignedString(sc.key)
}

func (j *JWT) verify(sc signingContext, tokenString string, typ model.TokenType) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return sc.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.TokenClaims{}, errors.Join(model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrInvalidToken
	}
	if claims.TokenType != string(typ) {
		return model.TokenClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	if claims.UserID == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: missing user id", model.ErrInvalidToken)
	}
	return toModel(claims), nil
}

func toModel(c *Claims) model.TokenClaims {
	out := model.TokenClaims{
		TokenPayload: model.TokenPayload{
			UserID: c.UserID,
			Email:  c.Email,
			Role:   model.Role(c.Role),
		},
		Type: model.TokenType(c.TokenType),
		ID:   c.ID,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
