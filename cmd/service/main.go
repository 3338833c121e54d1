package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/fleencorp/stream-service/internal/client/member"
	"github.com/fleencorp/stream-service/internal/client/space"
	"github.com/fleencorp/stream-service/internal/config"
	api "github.com/fleencorp/stream-service/internal/generated"
	"github.com/fleencorp/stream-service/internal/infra"
	"github.com/fleencorp/stream-service/internal/pkg/jwt"
	"github.com/fleencorp/stream-service/internal/pkg/tx"
	"github.com/fleencorp/stream-service/internal/pkg/validator"
	db "github.com/fleencorp/stream-service/internal/repository/postgres"
	"github.com/fleencorp/stream-service/internal/rest"
	"github.com/fleencorp/stream-service/internal/service/attendance"
	"github.com/fleencorp/stream-service/internal/service/notify"
	"github.com/fleencorp/stream-service/internal/service/streams"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	memberClient := member.New(cfg)
	defer memberClient.Close()

	spaceClient := space.New(cfg)
	defer spaceClient.Close()

	calendarProducer := kafkalib.NewProducer(kafkalib.DefaultProducerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.CalendarSyncTopic,
	))
	visibilityProducer := kafkalib.NewProducer(kafkalib.DefaultProducerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.VisibilityChangedTopic,
	))

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Broadcast.JWTSecret)

	notifier := notify.New(dbRepo)
	attendanceService := attendance.New(dbRepo, memberClient, spaceClient, notifier, calendarProducer)
	streamService := streams.New(dbRepo, memberClient, calendarProducer, visibilityProducer)

	handler := rest.New(attendanceService, streamService, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
