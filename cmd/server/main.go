package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campus-hub/campus-events/internal/auth"
	"github.com/campus-hub/campus-events/internal/config"
	"github.com/campus-hub/campus-events/internal/database"
	"github.com/campus-hub/campus-events/internal/handler"
	"github.com/campus-hub/campus-events/internal/logging"
	"github.com/campus-hub/campus-events/internal/repository"
	"github.com/campus-hub/campus-events/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTLifetime)
	if err != nil {
		logger.Fatal("token manager setup failed", zap.Error(err))
	}

	users := repository.NewUserRepository(pool)
	profiles := repository.NewUserProfileRepository(pool)
	rooms := repository.NewRoomRepository(pool)
	events := repository.NewEventRepository(pool)
	categories := repository.NewEventCategoryRepository(pool)
	mappings := repository.NewEventCategoryMappingRepository(pool)
	registrations := repository.NewEventRegistrationRepository(pool)
	applications := repository.NewEventApplicationRepository(pool)
	eventHistory := repository.NewEventModerationHistoryRepository(pool)
	applicationHistory := repository.NewApplicationHistoryRepository(pool)
	notifications := repository.NewNotificationRepository(pool)

	router := handler.NewRouter(handler.Deps{
		Auth:          service.NewAuthService(users, tokens),
		Users:         service.NewUserService(users, profiles),
		Rooms:         service.NewRoomService(rooms),
		Events:        service.NewEventService(events, users, rooms),
		Categories:    service.NewCategoryService(categories, mappings, events),
		Registrations: service.NewRegistrationService(registrations, events, users),
		Applications:  service.NewApplicationService(applications, events, users),
		Moderation:    service.NewModerationService(eventHistory, applicationHistory, events, applications, users),
		Notifications: service.NewNotificationService(notifications, users, events),
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
