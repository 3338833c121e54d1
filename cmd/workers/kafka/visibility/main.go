package main

import (
	"context"
	"fmt"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/fleencorp/stream-service/internal/config"
	databus "github.com/fleencorp/stream-service/internal/databus/visibility"
	"github.com/fleencorp/stream-service/internal/repository/postgres"
	"github.com/fleencorp/stream-service/internal/service/notify"
	"github.com/fleencorp/stream-service/internal/service/visibility"
)

const visibilityConsumerGroupID = "stream-visibility-transition"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.VisibilityChangedTopic,
		visibilityConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	calendarProducer := kafkalib.NewProducer(kafkalib.DefaultProducerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.CalendarSyncTopic,
	))

	notifier := notify.New(dbRepo)
	transitionService := visibility.New(dbRepo, notifier, calendarProducer)
	visibilityHandler := databus.New(transitionService)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		visibilityHandler.Handler(ctx, in)
		return nil
	})

	<-ctx.Done()
}
