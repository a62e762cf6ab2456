// Package httpapi exposes the distance engine over HTTP: a single
// POST /v1/distance endpoint plus a health check, behind the same
// middleware chain the reconciliation service used (recover, request-ID,
// logging, CORS, byte limit).
//
// This surface is additive: the pure engine and the cmd/worddist CLI are
// fully usable without ever starting this server. It exists to give the
// teacher's HTTP stack (chi, uuid, zerolog structured logging, CORS) a
// genuine home in the new domain.
package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"worddist"
	"worddist/internal/middleware"
	"worddist/internal/settings"
)

// NewRouter builds the chi router for worddistd. cfg is the immutable
// distance engine used to serve every request; s supplies CORS and
// upload-size settings.
func NewRouter(cfg *worddist.Config, s settings.Settings, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(s.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(s.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", Health)
	r.Post("/v1/distance", Distance(cfg, logger))

	return r
}
