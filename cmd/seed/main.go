package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/dream-social/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	demoUsername    = "demo"
	demoPassword    = "password123"
	demoFullName    = "Demo User"
	demoAvatarURL   = "https://ui-avatars.com/api/?name=Demo&background=random"
	demoStreakCount = 5
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
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

	created, err := seedDemoUser(ctx, db)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if created {
		logger.Log.Infow("demo user created", "username", demoUsername, "password", demoPassword)
	} else {
		logger.Log.Infow("demo user already exists", "username", demoUsername)
	}
}

// seedDemoUser inserts the demo account unless the username is taken.
// Reports whether a row was created.
func seedDemoUser(ctx context.Context, db *sqlx.DB) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO users (user_id, username, password_hash, full_name, avatar_url, streak_count, last_posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (username) DO NOTHING`

	res, err := db.ExecContext(ctx, query,
		uuid.New(), demoUsername, string(hash), demoFullName, demoAvatarURL, demoStreakCount,
	)
	if err != nil {
		return false, fmt.Errorf("insert demo user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
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
