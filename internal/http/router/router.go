// Package router builds the chi router: the ambient middleware stack and
// the route table.
//
// Route table:
//
//	GET    /             → health check (empty 200)
//	GET    /talker       → list all talkers
//	GET    /talker/{id}  → get one talker
//	POST   /login        → issue a token            (rate limited)
//	POST   /talker       → create a talker          (token required)
//	PUT    /talker/{id}  → replace a talker         (token required)
//	DELETE /talker/{id}  → delete a talker          (token required)
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aanand-mishra/talker-api/internal/config"
	"github.com/aanand-mishra/talker-api/internal/http/handlers/health"
	"github.com/aanand-mishra/talker-api/internal/http/handlers/login"
	"github.com/aanand-mishra/talker-api/internal/http/handlers/talker"
	"github.com/aanand-mishra/talker-api/internal/http/middleware"
	"github.com/aanand-mishra/talker-api/internal/storage"
	"github.com/aanand-mishra/talker-api/internal/token"
)

// New returns the application's http.Handler.
func New(cfg *config.Config, store storage.Storage, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	// Recoverer sits inside the logger so a recovered panic is logged as 500.
	r.Use(chimw.Recoverer)

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         300,
		}))
	}

	r.Get("/", health.Handler())

	r.With(middleware.RateLimit(cfg.Login.RateLimit, cfg.Login.RateWindow)).
		Post("/login", login.New(token.New))

	r.Route("/talker", func(r chi.Router) {
		r.Get("/", talker.GetList(store))
		r.Get("/{id}", talker.GetByID(store))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireToken())
			r.Post("/", talker.New(store))
			r.Put("/{id}", talker.Update(store))
			r.Delete("/{id}", talker.Delete(store))
		})
	})

	return r
}
