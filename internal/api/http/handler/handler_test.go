package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/wedwisely-server/internal/api/http/context"
	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/testutil"
)

const (
	userID  = "65f0c0ffee0000000000aaaa"
	adminID = "65f0c0ffee0000000000bbbb"
)

var (
	created = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	bride = model.User{
		ID:           userID,
		Email:        "bride@example.com",
		PasswordHash: "$2a$04$secret",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         model.RoleUser,
		Status:       model.StatusActive,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	admin = model.User{
		ID:        adminID,
		Email:     "admin@example.com",
		FirstName: "Root",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
		Status:    model.StatusActive,
	}
	pair = model.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: "7d"}
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newResponder() *respond.Responder {
	return respond.New(false, testutil.MakeNoopLogger())
}

// as stands in for the authentication middleware.
func as(cm *httpctx.Manager, user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Request = c.Request.WithContext(cm.SetUserToContext(c.Request.Context(), *user))
		}
		c.Next()
	}
}

func do(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
