package main

import (
	"context"
	"flag"
	"os"
	"unitactivity/internal/db"
	"unitactivity/internal/implementations/logging"

	dl "unitactivity/internal/core/domain/logging"

	"github.com/joho/godotenv"
)

func main() {
	migrationsPath := flag.String("path", "migrations", "directory with SQL migrations")
	flag.Parse()

	_ = godotenv.Load()

	logger := logging.NewZapLogger(false)
	defer logger.Sync()

	connString := os.Getenv("POSTGRESQL_URL")
	if connString == "" {
		logger.Error(context.Background(), "POSTGRESQL_URL must be set.")
		os.Exit(1)
	}

	if err := db.ApplyMigrations(*migrationsPath, connString); err != nil {
		dl.Error(context.Background(), logger, err, dl.Entry("path", *migrationsPath))
		os.Exit(1)
	}
	logger.Info(context.Background(), "Migrations have been applied.", dl.Entry("path", *migrationsPath))
}
