package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/wedwisely-server/internal/logger"
)

func TestLogging_HandleHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		requestID string
		wantLevel string
	}{
		{name: "success logs info", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error logs warn", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error logs error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "reuses request id", status: http.StatusOK, requestID: "req-123", wantLevel: "INFO"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := NewLogging(logger.NewWithWriter(&buf, slog.LevelDebug, "json"))

			header := http.Header{}
			if tt.requestID != "" {
				header.Set(RequestIDHeader, tt.requestID)
			}
			rec := serve(t, http.MethodGet, "/thing", "/thing", header, l.HandleHTTP(), func(c *gin.Context) {
				c.Status(tt.status)
			})

			requestID := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, requestID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, requestID)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "HTTP request completed", entry["msg"])
			assert.Equal(t, requestID, entry["request_id"])
			assert.Equal(t, "/thing", entry["path"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}
