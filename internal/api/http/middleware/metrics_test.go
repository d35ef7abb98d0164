package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method, route string
	status        int
}

type recordingObserver struct {
	calls []observed
}

func (r *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	r.calls = append(r.calls, observed{method: method, route: route, status: status})
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	rec := serve(t, http.MethodGet, "/api/users/:id", "/api/users/42", nil, Metrics(obs), ok)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, obs.calls, 1)
	assert.Equal(t, observed{method: http.MethodGet, route: "/api/users/:id", status: http.StatusOK}, obs.calls[0])
}
