package main

// Run database migrations:
//   go run ./cmd/migrate            apply pending migrations
//   go run ./cmd/migrate -status    print applied versions

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"study-backend/internal/shared/config"
	"study-backend/internal/shared/storage/db"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of migrating")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.ConnectWithRetry(ctx, cfg.DatabaseURL, opts, 5, 2*time.Second)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if *status {
		if err := db.MigrationStatus(ctx, sqlDB); err != nil {
			log.Printf("failed to read migration status: %v", err)
			os.Exit(1)
		}
		return
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
