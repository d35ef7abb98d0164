package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/wedwisely-server/internal/mocks"
	"github.com/dtroode/wedwisely-server/internal/testutil"
)

func TestRateLimit_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		allowed    bool
		err        error
		wantStatus int
	}{
		{name: "allowed", allowed: true, wantStatus: http.StatusOK},
		{name: "over the limit", allowed: false, wantStatus: http.StatusTooManyRequests},
		{name: "limiter down fails open", err: errors.New("redis: connection refused"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := mocks.NewRateLimiter(t)
			limiter.On("Allow", mock.Anything, "192.0.2.1").Return(tt.allowed, tt.err)

			m := NewRateLimit(limiter, newResponder(), testutil.MakeNoopLogger())
			rec := serve(t, http.MethodGet, "/api/x", "/api/x", nil, m.Handle(), ok)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, "Too many requests from this IP, please try again later.", errorMessage(t, rec))
			}
		})
	}
}
