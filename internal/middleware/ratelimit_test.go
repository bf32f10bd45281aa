// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/carterperez-dev/tierhub/internal/core"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/api/album/12/image", "/api/album/{id}/image"},
		{"/api/tierlist/line/3", "/api/tierlist/line/{id}"},
		{"/api/user/@bob1", "/api/user/@bob1"},
		{"/api/role/6f1c1f9e-2d0b-4c61-9d3e-7a0c2f1e8b42/", "/api/role/{id}"},
		{"/", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEndpoint(tt.in), tt.in)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "10.0.0.9", ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.0.2.7")
	assert.Equal(t, "192.0.2.7", ClientIP(req))
}

func TestKeyFuncs(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/album/4/image", nil)
	req.RemoteAddr = "10.0.0.9:5555"

	assert.Equal(t, "ip:10.0.0.9", KeyByIP(req))
	assert.Equal(t, KeyByIP(req), KeyByUser(req))
	assert.Equal(t, "ip:10.0.0.9:endpoint:/api/album/{id}/image", KeyByUserAndEndpoint(req))

	req = req.WithContext(WithClaims(req.Context(), &AccessTokenClaims{UserID: 42}, "tok"))
	assert.Equal(t, "user:42", KeyByUser(req))
	assert.Equal(t, "user:42:endpoint:/api/album/{id}/image", KeyByUserAndEndpoint(req))
}

func TestRateLimiterKeysAreScoped(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.9:5555"

	global := NewRateLimiter(unreachableRedis(t), RateLimitConfig{Limit: PerMinute(1, 1)})
	auth := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Scope:   "auth",
		Limit:   PerMinute(1, 1),
		KeyFunc: KeyByIP,
	})

	assert.Equal(t, "tierhub:ratelimit:global:ip:10.0.0.9", global.key(req))
	assert.Equal(t, "tierhub:ratelimit:auth:ip:10.0.0.9", auth.key(req))
}

// unreachableRedis forces the limiter onto its in-process fallback.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRateLimiterFallsBackToLocalBucket(t *testing.T) {
	limiter := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Limit: PerMinute(1, 2),
	})
	h := limiter.Handler(okHandler())

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send().Code)
	first := send()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	limited := send()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Contains(t, message(t, limited), "rate limit exceeded")
}

func TestRateLimiterBypass(t *testing.T) {
	limiter := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Limit:      PerMinute(1, 1),
		BypassFunc: func(*http.Request) bool { return true },
	})
	h := limiter.Handler(okHandler())

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/album", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterAnnotatesSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	limiter := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Scope: "auth",
		Limit: PerMinute(1, 1),
	})
	h := Tracing(tp.Tracer("test"))(limiter.Handler(okHandler()))

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	var limited []bool
	for _, span := range ended {
		for _, kv := range span.Attributes() {
			switch kv.Key {
			case core.AttrRateLimitScope:
				assert.Equal(t, "auth", kv.Value.AsString())
			case core.AttrRateLimited:
				limited = append(limited, kv.Value.AsBool())
			}
		}
	}
	assert.Equal(t, []bool{false, true}, limited)
}
