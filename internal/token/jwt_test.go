package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/wedwisely-server/internal/model"
)

var testPayload = model.TokenPayload{
	UserID: "65f0c1a2b3c4d5e6f7a8b9c0",
	Email:  "bride@example.com",
	Role:   model.RoleUser,
}

func newTestJWT(now func() time.Time) *JWT {
	return NewJWT(Options{
		AccessSecret: "secret",
		AccessTTL:    7 * 24 * time.Hour,
		RefreshTTL:   30 * 24 * time.Hour,
		ExpiresIn:    "7d",
	}, WithClock(now))
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := newTestJWT(func() time.Time { return now })

	access, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	claims, err := j.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, testPayload, claims.TokenPayload)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := newTestJWT(time.Now)

	refresh, err := j.GenerateRefreshToken(testPayload)
	require.NoError(t, err)

	claims, err := j.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, testPayload, claims.TokenPayload)
	assert.Equal(t, model.TokenTypeRefresh, claims.Type)
}

func TestJWT_GenerateTokenPair(t *testing.T) {
	j := newTestJWT(time.Now)

	pair, err := j.GenerateTokenPair(testPayload)
	require.NoError(t, err)
	assert.Equal(t, "7d", pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	_, err = j.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	_, err = j.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
}

func TestJWT_UniqueTokenIDs(t *testing.T) {
	j := newTestJWT(time.Now)

	first, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)
	second, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	a, err := j.VerifyAccessToken(first)
	require.NoError(t, err)
	b, err := j.VerifyAccessToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := newTestJWT(time.Now)

	pair, err := j.GenerateTokenPair(testPayload)
	require.NoError(t, err)

	_, err = j.VerifyRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = j.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	issued := time.Now().Add(-8 * 24 * time.Hour)
	j := newTestJWT(func() time.Time { return issued })

	access, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	_, err = j.VerifyAccessToken(access)
	require.NoError(t, err)

	later := NewJWT(Options{AccessSecret: "secret", AccessTTL: time.Hour, RefreshTTL: time.Hour}, WithClock(func() time.Time {
		return issued.Add(7*24*time.Hour + time.Second)
	}))
	_, err = later.VerifyAccessToken(access)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_RejectsForeignTokens(t *testing.T) {
	j := newTestJWT(time.Now)
	good, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	otherSecret := NewJWT(Options{AccessSecret: "other", AccessTTL: time.Hour, RefreshTTL: time.Hour})
	forged, err := otherSecret.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	otherIssuer := NewJWT(Options{AccessSecret: "secret", AccessTTL: time.Hour, RefreshTTL: time.Hour, Issuer: "someone-else"})
	wrongIss, err := otherIssuer.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	otherAudience := NewJWT(Options{AccessSecret: "secret", AccessTTL: time.Hour, RefreshTTL: time.Hour, Audience: "vendors"})
	wrongAud, err := otherAudience.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    DefaultIssuer,
			Audience:  jwt.ClaimStrings{DefaultAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    testPayload.UserID,
		TokenType: string(model.TokenTypeAccess),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"tampered", good[:len(good)-2] + "xx"},
		{"wrong secret", forged},
		{"wrong issuer", wrongIss},
		{"wrong audience", wrongAud},
		{"alg none", noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.VerifyAccessToken(tt.token)
			assert.ErrorIs(t, err, model.ErrInvalidToken)
		})
	}
}

func TestJWT_SeparateRefreshSecret(t *testing.T) {
	j := NewJWT(Options{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    time.Hour,
	})
	shared := NewJWT(Options{AccessSecret: "access-secret", AccessTTL: time.Hour, RefreshTTL: time.Hour})

	refresh, err := j.GenerateRefreshToken(testPayload)
	require.NoError(t, err)

	_, err = j.VerifyRefreshToken(refresh)
	require.NoError(t, err)

	_, err = shared.VerifyRefreshToken(refresh)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_DecodeToken(t *testing.T) {
	issued := time.Now().Add(-48 * time.Hour)
	j := NewJWT(Options{AccessSecret: "secret", AccessTTL: time.Hour, RefreshTTL: time.Hour}, WithClock(func() time.Time { return issued }))

	expired, err := j.GenerateAccessToken(testPayload)
	require.NoError(t, err)

	fresh := newTestJWT(time.Now)
	claims, err := fresh.DecodeToken(expired)
	require.NoError(t, err)
	assert.Equal(t, testPayload.Email, claims.Email)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)

	_, err = fresh.DecodeToken("garbage")
	assert.Error(t, err)
}
