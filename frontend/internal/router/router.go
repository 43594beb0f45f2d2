package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gamefeed/gamefeed/frontend/internal/middleware"
	"github.com/gamefeed/gamefeed/frontend/internal/session"
	"github.com/gamefeed/gamefeed/frontend/internal/setup"
	mw "github.com/gamefeed/gamefeed/shared/middleware"
	"github.com/gamefeed/gamefeed/shared/middleware/metrics"
	rl "github.com/gamefeed/gamefeed/shared/middleware/ratelimiter"
	"github.com/gamefeed/gamefeed/shared/validation"
)

// New creates and configures a chi router with all the routes.
// IMPORTANT! a rate limiter is shared by every request of one session, so
// each limited route gets its own instance.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	h := deps.Handler
	pub := deps.Public

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(pub.SecureCookies, mw.FrontendCSP))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))

	maxRequestSize := validation.CalculateMaxRequestSize(pub.MaxPhotoSize, 1<<20)
	csrfCfg := middleware.CSRFConfig{SecureCookies: pub.SecureCookies, MaxFormSize: maxRequestSize}
	sessions := deps.Sessions.Middleware(pub.SecureCookies)

	r.Group(func(r chi.Router) {
		r.Use(sessions)
		r.Use(middleware.GenerateCSRFToken(csrfCfg))

		r.Get("/", h.IndexGetHandler)

		r.Group(func(r chi.Router) {
			r.Use(chimw.RequestSize(maxRequestSize))
			r.Use(middleware.ValidateCSRFToken(csrfCfg))
			r.With(mw.RateLimit(rl.OncePerSecond(), session.ID)).Post("/posts", h.PostCreateHandler)
			r.With(mw.RateLimit(rl.Rps10(), session.ID)).Post("/posts/photo", h.PhotoChangeHandler)
		})
	})

	// CORS runs before the session so preflight requests never create one.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   pub.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(sessions)
		r.Get("/posts/status", h.PostStatusHandler)
	})

	return r
}
