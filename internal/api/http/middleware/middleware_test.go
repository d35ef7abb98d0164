package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newResponder() *respond.Responder {
	return respond.New(false, testutil.MakeNoopLogger())
}

// serve runs one request through handlers and returns the recorder.
func serve(t *testing.T, method, pattern, target string, header http.Header, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Handle(method, pattern, handlers...)

	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func ok(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body respond.Failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}
