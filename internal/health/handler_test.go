// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthy() Checker { return pingFunc(func(context.Context) error { return nil }) }

func failing() Checker {
	return pingFunc(func(context.Context) error { return errors.New("connection refused") })
}

func get(t *testing.T, h *Handler, path string) (int, ReadinessResponse) {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	return rec.Code, body
}

func TestLiveness(t *testing.T) {
	h := NewHandler()

	for _, path := range []string{"/healthz", "/livez"} {
		code, body := get(t, h, path)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	}

	h.SetShutdown(true)
	code, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "shutting_down", body.Status)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		checks []NamedChecker
		status int
		want   string
	}{
		{
			name:   "all healthy",
			checks: []NamedChecker{{Name: "database", Checker: healthy()}, {Name: "redis", Checker: healthy()}},
			status: http.StatusOK,
			want:   "ok",
		},
		{
			name:   "redis down",
			checks: []NamedChecker{{Name: "database", Checker: healthy()}, {Name: "redis", Checker: failing()}},
			status: http.StatusServiceUnavailable,
			want:   "degraded",
		},
		{
			name:   "checker missing",
			checks: []NamedChecker{{Name: "database"}},
			status: http.StatusServiceUnavailable,
			want:   "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, NewHandler(tt.checks...), "/readyz")

			assert.Equal(t, tt.status, code)
			assert.Equal(t, tt.want, body.Status)
			require.Len(t, body.Checks, len(tt.checks))
			for i, c := range body.Checks {
				assert.Equal(t, tt.checks[i].Name, c.Name)
			}
		})
	}
}

func TestReadinessHidesPingError(t *testing.T) {
	_, body := get(t, NewHandler(NamedChecker{Name: "redis", Checker: failing()}), "/readyz")

	require.Len(t, body.Checks, 1)
	assert.False(t, body.Checks[0].Healthy)
	assert.Equal(t, "ping failed", body.Checks[0].Message)
}
