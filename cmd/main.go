package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/dream-social/docs"
	"github.com/sbilibin2017/dream-social/internal/handlers"
	"github.com/sbilibin2017/dream-social/internal/jwt"
	"github.com/sbilibin2017/dream-social/internal/logger"
	"github.com/sbilibin2017/dream-social/internal/middlewares"
	"github.com/sbilibin2017/dream-social/internal/repositories"
	"github.com/sbilibin2017/dream-social/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	imageBaseURL string
	videoBaseURL string

	authRateLimitRPS   float64
	authRateLimitBurst int
}

// @title dream-social API
// @version 1.0.0
// @description Social network for sharing dreams: AI imagery, streaks, dream matching, messaging and notifications
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and media configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	cfg := &config{}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}

	// Kafka config, publishing is disabled without brokers
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, broker)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "dream-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return nil, err
	}

	// Media generation config
	cfg.imageBaseURL = getEnv("IMAGE_BASE_URL", "https://image.pollinations.ai")
	cfg.videoBaseURL = getEnv("VIDEO_BASE_URL", "https://video.pollinations.ai")

	// Rate limit config
	if cfg.authRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, err
	}
	if cfg.authRateLimitBurst, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT_BURST", "10")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing events to Kafka topic %s", cfg.kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	dreamReadRepo := repositories.NewDreamReadRepository(db, txGetter)
	dreamWriteRepo := repositories.NewDreamWriteRepository(db, txGetter)
	likeRepo := repositories.NewLikeRepository(db, txGetter)
	commentRepo := repositories.NewCommentRepository(db, txGetter)
	followRepo := repositories.NewFollowRepository(db, txGetter)
	matchRepo := repositories.NewMatchRepository(db, txGetter)
	notificationRepo := repositories.NewNotificationRepository(db, txGetter)
	conversationRepo := repositories.NewConversationRepository(db, txGetter)
	messageRepo := repositories.NewMessageRepository(db, txGetter)
	notificationStream := repositories.NewNotificationStreamRepository(rdb)

	// Initialize services
	notifier := services.NewNotifier(notificationRepo, notificationStream, userReadRepo)
	events := services.NewEventPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, dreamReadRepo, matchRepo, tokens)
	generatorService := services.NewGeneratorService(cfg.imageBaseURL, cfg.videoBaseURL)
	dreamService := services.NewDreamService(
		dreamReadRepo, dreamWriteRepo, userReadRepo, userWriteRepo,
		likeRepo, commentRepo, matchRepo, notifier, events,
	)
	socialService := services.NewSocialService(userReadRepo, dreamReadRepo, followRepo, notifier)
	messageService := services.NewMessageService(userReadRepo, conversationRepo, messageRepo)
	notificationService := services.NewNotificationService(notificationRepo, notificationStream)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(authService)
	generateHandler := handlers.NewGenerateHandler(generatorService)
	createDreamHandler := handlers.NewCreateDreamHandler(dreamService)
	feedHandler := handlers.NewFeedHandler(dreamService)
	likeHandler := handlers.NewLikeHandler(dreamService)
	commentHandler := handlers.NewCommentHandler(dreamService)
	commentsHandler := handlers.NewCommentsHandler(dreamService)
	viewHandler := handlers.NewViewHandler(dreamService)
	matchesHandler := handlers.NewMatchesHandler(dreamService)
	searchUsersHandler := handlers.NewSearchUsersHandler(socialService)
	profileHandler := handlers.NewProfileHandler(socialService)
	followHandler := handlers.NewFollowHandler(socialService)
	unfollowHandler := handlers.NewUnfollowHandler(socialService)
	conversationsHandler := handlers.NewConversationsHandler(messageService)
	messagesHandler := handlers.NewMessagesHandler(messageService)
	sendMessageHandler := handlers.NewSendMessageHandler(messageService)
	notificationsHandler := handlers.NewNotificationsHandler(notificationService)
	markReadHandler := handlers.NewMarkNotificationReadHandler(notificationService)
	markAllReadHandler := handlers.NewMarkAllNotificationsReadHandler(notificationService)
	notificationStreamHandler := handlers.NewNotificationStreamHandler(notificationService)

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)
	authLimiter := middlewares.NewRateLimiter(cfg.authRateLimitRPS, cfg.authRateLimitBurst)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Handler)
			r.Post("/auth/register", registerHandler)
			r.With(txMiddleware).Post("/auth/login", loginHandler)
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.With(txMiddleware).Get("/auth/me", meHandler)
			r.Put("/auth/profile", updateProfileHandler)

			r.Post("/dreams/generate", generateHandler)
			r.With(txMiddleware).Post("/dreams", createDreamHandler)
			r.Get("/dreams", feedHandler)
			r.Get("/dreams/matches", matchesHandler)
			r.With(txMiddleware).Post("/dreams/{id}/like", likeHandler)
			r.With(txMiddleware).Post("/dreams/{id}/comment", commentHandler)
			r.Get("/dreams/{id}/comments", commentsHandler)
			r.Post("/dreams/{id}/view", viewHandler)
			r.Get("/matches", matchesHandler)

			r.Get("/users/search", searchUsersHandler)
			r.Get("/users/profile/{username}", profileHandler)
			r.With(txMiddleware).Post("/users/follow/{id}", followHandler)
			r.Post("/users/unfollow/{id}", unfollowHandler)

			r.Get("/messages/conversations", conversationsHandler)
			r.With(txMiddleware).Get("/messages/{userId}", messagesHandler)
			r.With(txMiddleware).Post("/messages/{userId}", sendMessageHandler)

			r.Get("/notifications", notificationsHandler)
			r.Put("/notifications/read-all", markAllReadHandler)
			r.Put("/notifications/{id}/read", markReadHandler)
			r.Get("/notifications/stream", notificationStreamHandler)
		})
	})

	r.Handle("/metrics", middlewares.MetricsHandler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
