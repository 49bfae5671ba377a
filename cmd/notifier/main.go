package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"wakeline/internal/notifier/handler"
	"wakeline/internal/sessions/repository"
	"wakeline/pkg/config"
	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	kafka_config "wakeline/pkg/kafka/config"
	kafka_middleware "wakeline/pkg/kafka/middleware"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "notifier-group"
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Notifier service")

	bookingRepo := repository.NewMongoBookingRepository(cfg)
	waitlistRepo := repository.NewMongoWaitlistRepository(cfg)
	eventHandler := handler.NewEventHandler(bookingRepo, waitlistRepo, cfg.Log)

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(func(msg string, args ...any) {
		cfg.Log.Info(msg, args...)
	})

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		events.TopicSessionEvents,
		ConsumerGroup,
		events.TopicSessionDLQ,
		eventHandler.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka consumer", "error", err)
		}
	}()

	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	consumerErrors := make(chan error, 1)
	go func() {
		cfg.Log.Info("Consuming session events", "topic", events.TopicSessionEvents, "group", ConsumerGroup)
		consumerErrors <- consumer.Start(ctx)
	}()

	select {
	case err := <-consumerErrors:
		if err != nil && !errors.Is(err, context.Canceled) {
			cfg.Log.Fatal("Consumer failed", "error", err)
		}
	case sig := <-shutdown:
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
		<-consumerErrors
	}

	cfg.Log.Info("Notifier stopped gracefully")
}
