// AngelaMos | 2026
// server_test.go

package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/health"
)

func newTestServer(h *health.Handler) *Server {
	return New(Config{
		ServerConfig: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		HealthHandler: h,
		Logger:        slog.New(slog.DiscardHandler),
	})
}

func TestUnknownRoutesUseEnvelope(t *testing.T) {
	srv := newTestServer(nil)
	srv.Router().Get("/api/album", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"route not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/album", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"method not allowed"}`, rec.Body.String())
}

func TestRecoversFromPanic(t *testing.T) {
	srv := newTestServer(nil)
	srv.Router().Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestShutdownFailsLiveness(t *testing.T) {
	h := health.NewHandler()
	srv := newTestServer(h)
	h.RegisterRoutes(srv.Router())

	require.NoError(t, srv.Shutdown(context.Background(), 0))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestShutdownHonoursDeadline(t *testing.T) {
	srv := newTestServer(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, srv.Shutdown(ctx, time.Minute), context.Canceled)
}
