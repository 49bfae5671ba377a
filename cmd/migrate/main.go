package main

import (
	"context"
	"fmt"
	"os"
	"time"

	mongoMigration "wakeline/internal/migrations/mongo"
	"wakeline/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")

	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if os.Getenv("SEED_FIXTURES") == "true" {
		if err := mongoMigration.RunSeed(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
			cfg.Log.Fatal("Seeding failed", "error", err)
		}
	}

	fmt.Println("Migration completed successfully.")
}
