package main

import (
	"wakeline/internal/sessions/handler"
	"wakeline/internal/sessions/repository"
	"wakeline/internal/sessions/service"
	"wakeline/internal/sessions/validator"
	"wakeline/pkg/app"
	"wakeline/pkg/config"
	"wakeline/pkg/events"
	"wakeline/pkg/kafka"
	kafka_config "wakeline/pkg/kafka/config"
	kafka_middleware "wakeline/pkg/kafka/middleware"
	"wakeline/pkg/payments"
)

const ServiceName = "sessions"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Sessions service")

	producer := initProducer(cfg)
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}()
	}

	sessionService := initServices(cfg, producer)
	serverApp := app.NewApplication(ServiceName)
	serverApp.SetApp(cfg, handler.NewSessionHandler(sessionService, cfg.Log))
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(func(msg string, args ...any) {
		cfg.Log.Info(msg, args...)
	})

	producer, err := kafka.NewProducer(kafkaCfg, events.TopicSessionEvents, events.TopicSessionDLQ)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.SessionService {
	sessionValidator := validator.NewSessionValidator(cfg.Log)
	sessionRepo := repository.NewMongoSessionRepository(cfg)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	waitlistRepo := repository.NewMongoWaitlistRepository(cfg)
	lockRepo := repository.NewSeatLockRepository(cfg)
	authorizer := payments.NewHTTPAuthorizer(cfg.PaymentEndpoint, cfg.Log)

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	sessionService := service.NewSessionService(
		sessionRepo,
		bookingRepo,
		waitlistRepo,
		lockRepo,
		sessionValidator,
		authorizer,
		publisher,
		cfg,
	)

	cfg.Log.Info("Sessions service initialized", "database", cfg.MongoDatabaseName)
	return sessionService
}
