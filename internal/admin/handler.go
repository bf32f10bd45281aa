// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/tierhub/internal/core"
)

// HandlerConfig wires the checks the stats endpoints read. Any field may be
// nil; the matching section is then reported as healthy with no pool stats.
type HandlerConfig struct {
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
	Content    ContentCounter
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/stats", func(r chi.Router) {
		r.Use(authenticator, adminOnly)

		r.Get("/", h.GetSystemStats)
		r.Get("/content", h.GetContentStats)
		r.Get("/db", h.GetDatabaseStats)
		r.Get("/redis", h.GetRedisStats)
		r.Get("/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	core.OK(w, "system stats", SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: healthy(ctx, h.cfg.DBPing),
			Stats:   h.dbPool(),
		},
		Redis: RedisStatus{
			Healthy: healthy(ctx, h.cfg.RedisPing),
			Stats:   h.redisPool(),
		},
		Runtime: readRuntime(),
	})
}

func (h *Handler) GetContentStats(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Content == nil {
		core.HandleError(w, r, core.NotFoundError("content stats"))
		return
	}

	counts, err := h.cfg.Content.Count(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, "content stats", counts)
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, "database stats", h.dbPool())
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, "redis stats", h.redisPool())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, "runtime stats", readRuntime())
}

func (h *Handler) dbPool() *DBPoolStats {
	if h.cfg.DBStats == nil {
		return nil
	}
	return toDBPoolStats(h.cfg.DBStats())
}

func (h *Handler) redisPool() *RedisPoolStats {
	if h.cfg.RedisStats == nil {
		return nil
	}
	return toRedisPoolStats(h.cfg.RedisStats())
}

func healthy(ctx context.Context, ping func(context.Context) error) bool {
	return ping == nil || ping(ctx) == nil
}
