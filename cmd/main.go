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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/gw-movie-lists/internal/facades"
	"github.com/sbilibin2017/gw-movie-lists/internal/handlers"
	"github.com/sbilibin2017/gw-movie-lists/internal/jwt"
	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
	"github.com/sbilibin2017/gw-movie-lists/internal/repositories"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"

	"github.com/sbilibin2017/gw-movie-lists/internal/middlewares"

	_ "github.com/sbilibin2017/gw-movie-lists/docs"
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
	appHost, appPort string
	logLevel         string
	corsOrigin       string

	mongoURI        string
	mongoDB         string
	mongoTimeoutSec int

	redisHost         string // empty disables the search cache
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExpSecond    int

	kafkaBrokers []string // empty disables list events
	kafkaTopic   string

	tmdbBaseURL    string
	tmdbAPIKey     string
	tmdbTimeoutSec int

	accessTokenSecret     string
	refreshTokenSecret    string
	accessTokenExpSecond  int
	refreshTokenExpSecond int
	refreshTokenPolicy    services.RefreshPolicy
}

// @title gw-movie-lists API
// @version 1.0.0
// @description Service for building and sharing movie and TV lists
// @host localhost:4000
// @BasePath /
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
// the application, MongoDB, Redis, Kafka, metadata API and token configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "4000")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.corsOrigin = getEnv("APP_CORS_ORIGIN", "http://localhost:3000")

	// MongoDB config
	cfg.mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.mongoDB = getEnv("MONGO_DB", "movielistmaker")
	if cfg.mongoTimeoutSec, err = getInt("MONGO_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "600"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "list-events")

	// Metadata API config
	cfg.tmdbBaseURL = getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	cfg.tmdbAPIKey = getEnv("TMDB_API_KEY", "")
	if cfg.tmdbTimeoutSec, err = getInt("TMDB_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// JWT config
	cfg.accessTokenSecret = getEnv("ACCESS_TOKEN_SECRET", "my_access_secret_key")
	cfg.refreshTokenSecret = getEnv("REFRESH_TOKEN_SECRET", "my_refresh_secret_key")
	if cfg.accessTokenExpSecond, err = getInt("ACCESS_TOKEN_EXP_SECOND", "180"); err != nil {
		return
	}
	if cfg.refreshTokenExpSecond, err = getInt("REFRESH_TOKEN_EXP_SECOND", "2592000"); err != nil {
		return
	}
	if cfg.refreshTokenPolicy, err = services.ParseRefreshPolicy(getEnv("REFRESH_TOKEN_POLICY", "reuse")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB, the optional Redis cache and Kafka writer, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to MongoDB
	mongoTimeout := time.Duration(cfg.mongoTimeoutSec) * time.Second
	connectCtx, cancelConnect := context.WithTimeout(ctx, mongoTimeout)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.mongoURI).
		SetTimeout(mongoTimeout))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	db := client.Database(cfg.mongoDB)
	if err := repositories.EnsureIndexes(connectCtx, db); err != nil {
		return fmt.Errorf("MongoDB index setup failed: %w", err)
	}
	logger.Log.Infow("Connected to MongoDB", "database", cfg.mongoDB)

	// Connect to Redis
	var searchCache services.SearchCache
	if cfg.redisHost != "" {
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
		searchCache = repositories.NewSearchCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)
		logger.Log.Infow("Search cache enabled", "redis", rdb.Options().Addr)
	} else {
		logger.Log.Info("REDIS_HOST not set, search cache disabled")
	}

	// Kafka writer for list events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		kafkaWriter = w
		logger.Log.Infow("List events enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, list events disabled")
	}

	// Initialize JWT signers
	accessJWT := jwt.New(
		jwt.WithSecretKey(cfg.accessTokenSecret),
		jwt.WithExpiration(time.Duration(cfg.accessTokenExpSecond)*time.Second),
	)
	refreshTTL := time.Duration(cfg.refreshTokenExpSecond) * time.Second
	refreshJWT := jwt.New(
		jwt.WithSecretKey(cfg.refreshTokenSecret),
		jwt.WithExpiration(refreshTTL),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	listReadRepo := repositories.NewListReadRepository(db)
	listWriteRepo := repositories.NewListWriteRepository(db)
	refreshTokenReadRepo := repositories.NewRefreshTokenReadRepository(db)
	refreshTokenWriteRepo := repositories.NewRefreshTokenWriteRepository(db)

	// Initialize facades
	movieSearch := facades.NewMovieSearchHTTPFacade(
		cfg.tmdbBaseURL, cfg.tmdbAPIKey, time.Duration(cfg.tmdbTimeoutSec)*time.Second,
	)

	// Initialize services
	tokenService := services.NewTokenService(accessJWT, refreshJWT, refreshTokenWriteRepo)
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo, tokenService,
		refreshTokenReadRepo, refreshTokenWriteRepo,
		cfg.refreshTokenPolicy,
	)
	ownership := services.NewOwnershipCoordinator(userReadRepo, userWriteRepo, listReadRepo, listWriteRepo)
	listService := services.NewListService(listReadRepo, listWriteRepo, ownership, kafkaWriter)
	searchService := services.NewSearchService(movieSearch, searchCache)

	// Initialize handlers
	getListHandler := handlers.NewGetListHandler(listService)
	searchMoviesHandler := handlers.NewSearchMoviesHandler(searchService)
	loginHandler := handlers.NewLoginHandler(authService, refreshTTL)
	signupHandler := handlers.NewSignupHandler(authService, refreshTTL)
	tokenHandler := handlers.NewTokenHandler(authService, refreshTTL)
	logoutHandler := handlers.NewLogoutHandler(authService)
	createListHandler := handlers.NewCreateListHandler(listService, middlewares.UsernameFromContext)
	updateListHandler := handlers.NewUpdateListHandler(listService, middlewares.UsernameFromContext)
	deleteListHandler := handlers.NewDeleteListHandler(listService, middlewares.UsernameFromContext)
	getAccountListsHandler := handlers.NewGetAccountListsHandler(listService, middlewares.UsernameFromContext)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORS(cfg.corsOrigin))

	// Public routes
	r.Get("/getlist/{id}", getListHandler)
	r.Get("/searchmovies/{query}", searchMoviesHandler)
	r.Post("/login", loginHandler)
	r.Post("/signup", signupHandler)
	r.Post("/token", tokenHandler)
	r.Post("/logout", logoutHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(accessJWT))
		r.Post("/createlist", createListHandler)
		r.Patch("/updatelist/{id}", updateListHandler)
		r.Delete("/deletelist/{id}", deleteListHandler)
		r.Post("/getaccountlists", getAccountListsHandler)
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
