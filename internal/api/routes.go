package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/config"
	"github.com/jobdash/dashboard/internal/digest"
	"github.com/jobdash/dashboard/internal/notify"
	"github.com/jobdash/dashboard/internal/prefs"
	"github.com/jobdash/dashboard/internal/tracker"
)

func NewRouter(cfg *config.Config, c *catalog.Catalog, p *prefs.Store, t *tracker.Store, d *digest.Generator, n *notify.Center) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	h := NewHandlers(cfg, c, p, t, d, n)
	wsServer := notify.NewWSServer(n)

	r.Get("/health", h.Health)
	r.Get("/stats", h.Stats)

	r.Get("/api/jobs", h.ListJobs)
	r.Put("/api/jobs/{id}/status", h.SetStatus)
	r.Post("/api/jobs/{id}/save", h.SaveJob)
	r.Get("/api/saved", h.ListSaved)

	r.Get("/api/preferences", h.GetPreferences)
	r.Put("/api/preferences", h.PutPreferences)

	r.Post("/api/digest/generate", h.GenerateDigest)
	r.Get("/api/digest", h.GetDigest)
	r.Get("/api/digest/text", h.DigestText)
	r.Get("/api/digest/email-link", h.DigestEmailLink)

	r.Get("/api/notice", h.CurrentNotice)
	r.Get("/ws/notices", wsServer.HandleNotices)

	return r
}
