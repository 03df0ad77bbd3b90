// Package web serves the browser form and its JSON API.
package web

import (
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"

	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
	"github.com/engr-razib/BrandingAssetGenerator/internal/session"
)

//go:embed static
var staticFiles embed.FS

const sessionCookie = "bag_session"

type Options struct {
	Orchestrator *batch.Orchestrator
	Sessions     *session.Store
	Logger       *slog.Logger

	// CookieMaxAge should match the session TTL.
	CookieMaxAge  time.Duration
	SecureCookies bool

	Now func() time.Time
}

type Server struct {
	orch     *batch.Orchestrator
	sessions *session.Store
	logger   *slog.Logger

	cookieMaxAge  time.Duration
	secureCookies bool
	now           func() time.Time

	archives singleflight.Group
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewStore(session.Options{})
	}

	return &Server{
		orch:          opts.Orchestrator,
		sessions:      sessions,
		logger:        logger,
		cookieMaxAge:  opts.CookieMaxAge,
		secureCookies: opts.SecureCookies,
		now:           now,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(s.requestLogger, instrument)

	static, _ := fs.Sub(staticFiles, "static")
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.listCategories)
		r.Get("/catalog/{category}", s.getCatalog)
		r.Get("/samples/{category}", s.getSamples)

		r.Route("/batches", func(r chi.Router) {
			r.Post("/", s.submitBatch)
			r.Get("/{batchID}/archive", s.downloadArchive)
			r.Post("/{batchID}/items/{itemID}/regenerate", s.regenerateItem)
			r.Get("/{batchID}/items/{itemID}/image", s.downloadImage)
		})
	})

	return r
}
