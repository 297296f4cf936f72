package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	down := flag.Bool("down", false, "Roll back every migration instead of applying them")
	flag.Parse()
	_ = godotenv.Load(*configPath)

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", postgresDSN())
	if err != nil {
		log.Fatalf("PostgreSQL connection error: %v", err)
	}
	defer db.Close()

	apply, direction := migrations.Up, "up"
	if *down {
		apply, direction = migrations.Down, "down"
	}
	if err := apply(db.DB); err != nil {
		log.Fatalf("migration %s failed: %v", direction, err)
	}
	logger.Log.Infow("migrations applied", "direction", direction)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "database"),
	)
}
