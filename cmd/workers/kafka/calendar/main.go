package main

import (
	"context"
	"fmt"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	calendar_client "github.com/fleencorp/stream-service/internal/client/calendar"
	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/databus/calendar"
	"github.com/fleencorp/stream-service/internal/repository/postgres"
)

const calendarSyncConsumerGroupID = "stream-calendar-sync"

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
		cfg.Kafka.CalendarSyncTopic,
		calendarSyncConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	calendarClient := calendar_client.New(cfg)
	defer calendarClient.Close()

	calendarHandler := calendar.New(dbRepo, calendarClient)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		calendarHandler.Handler(ctx, in)
		return nil
	})

	<-ctx.Done()
}
