package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"account-service/internal/handler"
	"account-service/pkg/middleware"
)

func SetupRoutes(
	r chi.Router,
	accounts *handler.AccountHandler,
	sessions *handler.SessionHandler,
	tickets *handler.TicketHandler,
	auth *middleware.AuthMiddleware,
	rdb *redis.Client,
) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(instrument)
	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, time.Minute, "global_account"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		// ---------------- Public ----------------
		api.Group(func(pub chi.Router) {
			pub.Get("/health", accounts.Health)
			pub.Post("/users", accounts.CreateAccount)
		})

		// Sign-in is for guests only and gets a tighter limit.
		api.Group(func(g chi.Router) {
			g.Use(auth.RejectAuthenticated())
			g.Use(middleware.RateLimiter(rdb, 10, 30*time.Second, 5*time.Minute, "sign_in"))
			g.Post("/auth/sessions", sessions.CreateSession)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(g chi.Router) {
			g.Use(auth.Require())
			g.Get("/users/{id}", accounts.ShowAccount)
			g.Delete("/auth/sessions/current", sessions.DeleteCurrentSession)
			g.Post("/tickets", tickets.CreateTicket)
		})
	})

	return r
}
