package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"github.com/sinding/booking-api/internal/config"
	"github.com/sinding/booking-api/internal/domain/admin"
	"github.com/sinding/booking-api/internal/domain/booking"
	"github.com/sinding/booking-api/internal/domain/catalogue"
	"github.com/sinding/booking-api/internal/middleware"
	"github.com/sinding/booking-api/internal/pkg/database"
	"github.com/sinding/booking-api/internal/pkg/email"
	"github.com/sinding/booking-api/internal/pkg/events"
	"github.com/sinding/booking-api/internal/pkg/jwt"
	"github.com/sinding/booking-api/internal/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("db_driver", cfg.DBDriver).
		Msg("Starting booking API")

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	cat := catalogue.Default()
	if cfg.CatalogueFile != "" {
		if cat, err = catalogue.LoadFile(cfg.CatalogueFile); err != nil {
			log.Fatal().Err(err).Str("file", cfg.CatalogueFile).Msg("Failed to load catalogue")
		}
	}
	log.Info().Int("items", len(cat.Items())).Msg("Catalogue loaded")

	// ---------- Notifications ----------
	var sender email.Sender = email.LogSender{}
	if cfg.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, emails are logged instead of sent")
	}
	emailService := email.NewService(sender, email.Config{SiteName: cfg.SiteName})
	defer emailService.Close()

	notifiers := []booking.Notifier{booking.NewEmailNotifier(emailService, cfg.OperatorEmail)}

	if cfg.AMQPURL != "" {
		publisher, err := events.NewRabbitMQPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer publisher.Close()
		notifiers = append(notifiers, booking.NewEventNotifier(publisher))
	}

	// ---------- Services ----------
	bookingService := booking.NewService(booking.NewRepository(db), cat, booking.ServiceConfig{
		Location:      cfg.Location(),
		NotifyTimeout: cfg.NotifyTimeout,
	}, notifiers...)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AdminTokenTTL)
	adminService := admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, jwtService)
	if cfg.AdminPasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set, operator login disabled")
	}

	var limiterStore middleware.RateLimitStore
	if redis != nil {
		limiterStore = redis
	}

	router := newRouter(cfg, routerDeps{
		db:           db,
		catalogue:    cat,
		bookings:     bookingService,
		admin:        adminService,
		jwt:          jwtService,
		limiter:      middleware.NewRateLimiter(limiterStore, "bookings", cfg.RateLimitPerMinute, time.Minute),
		loginLimiter: middleware.NewRateLimiter(limiterStore, "admin_login", 5, time.Minute),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := bookingService.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("Pending notifications did not finish")
	}

	log.Info().Msg("Server exited")
}
