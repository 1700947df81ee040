package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/sinding/booking-api/internal/config"
	"github.com/sinding/booking-api/internal/domain/admin"
	"github.com/sinding/booking-api/internal/domain/booking"
	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/domain/form"
	"github.com/sinding/booking-api/internal/domain/pricing"
	"github.com/sinding/booking-api/internal/middleware"
	"github.com/sinding/booking-api/internal/pkg/jwt"
	pkgresponse "github.com/sinding/booking-api/internal/pkg/response"
)

type routerDeps struct {
	db           *sqlx.DB
	catalogue    *catalogue.Catalogue
	bookings     *booking.Service
	admin        *admin.Service
	jwt          *jwt.Service
	limiter      *middleware.RateLimiter
	loginLimiter *middleware.RateLimiter
}

func newRouter(cfg *config.Config, deps routerDeps) chi.Router {
	// ---------- Handlers ----------
	catalogueHandler := catalogue.NewHandler(deps.catalogue)
	pricingHandler := pricing.NewHandler(deps.catalogue)
	bookingHandler := booking.NewHandler(deps.bookings)
	adminHandler := admin.NewHandler(deps.admin)
	formHandler := form.NewHandler(deps.catalogue, form.Config{
		SiteName:  cfg.SiteName,
		SubmitURL: "/api/v1/bookings",
		Location:  cfg.Location(),
	})

	authMiddleware := []func(http.Handler) http.Handler{
		middleware.Auth(deps.jwt),
		middleware.RequireOperator(),
	}
	csrfMiddleware := middleware.CSRF(middleware.CSRFConfig{
		AuthKey:        []byte(cfg.CSRFKey),
		Secure:         cfg.SecureCookies,
		TrustedOrigins: cfg.AllowedOrigins,
	})

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", healthHandler(deps.db))

	// Form page and submissions share the CSRF cookie
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.With(chimw.Compress(5)).Get("/", formHandler.Page)
		r.Mount("/api/v1/bookings", bookingHandler.PublicRoutes(middleware.RateLimit(deps.limiter)))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/catalogue", catalogueHandler.Routes())
		r.Mount("/quote", pricingHandler.Routes())
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Mount("/bookings", bookingHandler.AdminRoutes(authMiddleware...))
		r.Mount("/", adminHandler.Routes(authMiddleware, middleware.RateLimit(deps.loginLimiter)))
	})

	return r
}

func healthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			pkgresponse.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable")
			return
		}

		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	}
}
