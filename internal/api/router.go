package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/stf-adrian/start-from-scratch/internal/api/handlers"
	"github.com/stf-adrian/start-from-scratch/internal/api/middleware"
	"github.com/stf-adrian/start-from-scratch/internal/config"
	"github.com/stf-adrian/start-from-scratch/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	authHandler := handlers.NewAuthHandler(services.Auth, log)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Audit, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
		})

		// Public auth routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Tokens))
			r.Get("/me", authHandler.Me)
			r.Get("/analytics/logins", analyticsHandler.LoginAnalytics)
			r.Get("/login-history", analyticsHandler.LoginHistory)
		})
	})

	return r
}
