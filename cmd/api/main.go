package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/careproclinic/patient-api/internal/catalog"
	"github.com/careproclinic/patient-api/internal/config"
	"github.com/careproclinic/patient-api/internal/handler"
	appointmentHandler "github.com/careproclinic/patient-api/internal/handler/appointment"
	catalogHandler "github.com/careproclinic/patient-api/internal/handler/catalog"
	contactHandler "github.com/careproclinic/patient-api/internal/handler/contact"
	portalHandler "github.com/careproclinic/patient-api/internal/handler/portal"
	triageHandler "github.com/careproclinic/patient-api/internal/handler/triage"
	"github.com/careproclinic/patient-api/internal/middleware"
	"github.com/careproclinic/patient-api/internal/notify"
	kvrepo "github.com/careproclinic/patient-api/internal/repository/kv"
	"github.com/careproclinic/patient-api/internal/router"
	bookingService "github.com/careproclinic/patient-api/internal/service/booking"
	contactService "github.com/careproclinic/patient-api/internal/service/contact"
	portalService "github.com/careproclinic/patient-api/internal/service/portal"
	triageService "github.com/careproclinic/patient-api/internal/service/triage"
	"github.com/careproclinic/patient-api/internal/storage"
	"github.com/careproclinic/patient-api/pkg/logger"
	"github.com/careproclinic/patient-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})
	log := *appLogger.Zerolog()

	backend, closeBackend, err := newBackend(cfg.Storage, log)
	if err != nil {
		appLogger.Fatal(err, "failed to initialize storage backend")
	}
	defer closeBackend()

	store := storage.NewStore(backend, log)

	seeder := kvrepo.NewSeeder(store)
	seeder.Ensure(context.Background())

	appointmentRepo := kvrepo.NewAppointmentRepository(store, seeder)
	contactRepo := kvrepo.NewContactRepository(store, seeder)
	visitRepo := kvrepo.NewVisitHistoryRepository(store, seeder)
	userRepo := kvrepo.NewPortalUserRepository(store, seeder)
	sessionRepo := kvrepo.NewSessionRepository(store)
	referenceRepo := kvrepo.NewBookingReferenceRepository(store, cfg.Booking.ReferenceStart)

	var notifier notify.Sender = notify.NoopSender{}
	if cfg.SMTP.Enabled {
		notifier = notify.NewEmailSender(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log)
	}

	bookingSvc := bookingService.NewService(appointmentRepo, referenceRepo, notifier, bookingService.Config{
		MeetingBaseURL:           cfg.Booking.MeetingBaseURL,
		AllowRescheduleCancelled: cfg.Booking.AllowRescheduleCancelled,
	}, log)
	contactSvc := contactService.NewService(contactRepo, log)
	portalSvc := portalService.NewService(userRepo, sessionRepo, visitRepo, security.NewBcryptHasher(0), log)
	triageSvc := triageService.NewService()

	h := handler.NewHandler()

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}
	if len(cfg.Security.AllowedMethods) > 0 {
		corsConfig.AllowMethods = cfg.Security.AllowedMethods
	}
	if len(cfg.Security.AllowedHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.Security.AllowedHeaders
	}

	r := router.NewRouter(
		appointmentHandler.NewHandler(bookingSvc),
		contactHandler.NewHandler(contactSvc),
		portalHandler.NewHandler(portalSvc),
		triageHandler.NewHandler(triageSvc),
		catalogHandler.NewHandler(),
		h,
		log,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: cfg.Monitoring.MetricsPrefix,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("server starting",
			"port", cfg.Server.Port,
			"storage", cfg.Storage.Backend,
			"services", len(catalog.Services))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}

func newBackend(cfg config.StorageConfig, log zerolog.Logger) (storage.Backend, func(), error) {
	switch cfg.Backend {
	case "redis":
		backend, err := storage.NewRedisBackend(storage.RedisConfig{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {
			if err := backend.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis backend")
			}
		}, nil
	case "", "memory":
		return storage.NewMemoryBackend(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
