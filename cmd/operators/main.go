package main

import (
	"wakeline/internal/operators/handler"
	"wakeline/internal/operators/repository"
	"wakeline/internal/operators/service"
	"wakeline/internal/operators/validator"
	"wakeline/pkg/app"
	"wakeline/pkg/config"
)

const ServiceName = "operators"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Operators service")
	operatorService := initServices(cfg)
	serverApp := app.NewApplication(ServiceName)
	serverApp.SetApp(cfg, handler.NewOperatorHandler(operatorService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.OperatorService {
	operatorValidator := validator.NewOperatorValidator(cfg.Log)
	operatorRepo := repository.NewMongoOperatorRepository(cfg)
	operatorService := service.NewOperatorService(
		operatorRepo,
		operatorValidator,
		cfg,
	)

	cfg.Log.Info("Operators service initialized", "database", cfg.MongoDatabaseName)
	return operatorService
}
