package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/freaksearch-chat/docs"
	"github.com/sbilibin2017/freaksearch-chat/internal/handlers"
	"github.com/sbilibin2017/freaksearch-chat/internal/hasher"
	"github.com/sbilibin2017/freaksearch-chat/internal/intent"
	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
	"github.com/sbilibin2017/freaksearch-chat/internal/middlewares"
	"github.com/sbilibin2017/freaksearch-chat/internal/repositories"
	"github.com/sbilibin2017/freaksearch-chat/internal/services"
	"github.com/sbilibin2017/freaksearch-chat/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DBDriver       string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBAutoMigrate  bool

	BcryptCost int

	VectorizerPath string
	ClassifierPath string

	StaticDir     string
	UploadsDir    string
	UploadBackend string
	S3            storage.S3Config

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	IntentCacheTTL time.Duration
}

// @title FreakSearch Chat API
// @version 1.0.0
// @description Registration, login, scripted chatbot and media upload endpoints of FreakSearch
// @host localhost:8080
// @BasePath /api
// @schemes http
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, model, upload and cache configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	cfg.DBDriver = getEnv("DB_DRIVER", "mysql")
	defaultDBPort := "3306"
	switch cfg.DBDriver {
	case "mysql":
	case "pgx":
		defaultDBPort = "5432"
	default:
		return cfg, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBUser = getEnv("DB_USER", "user")
	cfg.DBPassword = getEnv("DB_PASSWORD", "password")
	cfg.DBName = getEnv("DB_NAME", "freaksearch")
	if cfg.DBPort, err = strconv.Atoi(getEnv("DB_PORT", defaultDBPort)); err != nil {
		return
	}
	if cfg.DBMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.DBMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	if cfg.DBAutoMigrate, err = strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true")); err != nil {
		return
	}

	// Password hashing
	if cfg.BcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return
	}

	// Model artifacts
	cfg.VectorizerPath = getEnv("MODEL_VECTORIZER_PATH", filepath.Join("backend", "freaksearch_vectorizer_indian_v1.json"))
	cfg.ClassifierPath = getEnv("MODEL_CLASSIFIER_PATH", filepath.Join("backend", "freaksearch_model_indian_v1.json"))

	// Static pages and uploads
	cfg.StaticDir = getEnv("STATIC_DIR", "static")
	cfg.UploadsDir = getEnv("UPLOADS_DIR", "uploads")
	cfg.UploadBackend = getEnv("UPLOAD_BACKEND", "local")
	if cfg.UploadBackend != "local" && cfg.UploadBackend != "s3" {
		return cfg, fmt.Errorf("unsupported UPLOAD_BACKEND %q", cfg.UploadBackend)
	}
	cfg.S3 = storage.S3Config{
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", ""),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		Prefix:    getEnv("S3_PREFIX", "uploads"),
	}

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	ttl, err := strconv.Atoi(getEnv("INTENT_CACHE_TTL_SECOND", "3600"))
	if err != nil {
		return
	}
	cfg.IntentCacheTTL = time.Duration(ttl) * time.Second

	return
}

// dataSourceName builds the driver specific DSN.
func dataSourceName(cfg config) string {
	if cfg.DBDriver == "pgx" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}

// run initializes the logger, database, classifier, cache, upload storage and
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the credential store pool. An unreachable database is not fatal:
	// auth requests report it while chat keeps working.
	db, err := sqlx.Open(cfg.DBDriver, dataSourceName(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)

	logger.Log.Infow("Connecting to database", "driver", cfg.DBDriver, "host", cfg.DBHost, "port", cfg.DBPort, "name", cfg.DBName)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Warnw("database is unreachable, schema migration skipped", "err", err)
	} else if cfg.DBAutoMigrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Load model artifacts
	classifier, err := intent.Load(cfg.VectorizerPath, cfg.ClassifierPath)
	if err != nil {
		logger.Log.Warnw("intent model not loaded, intent detection disabled", "err", err)
	} else {
		logger.Log.Info("Intent model and vectorizer loaded")
	}

	// Optional intent cache
	var intentCache services.IntentCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("redis is unreachable, cache errors will be ignored", "err", err)
		}
		intentCache = repositories.NewIntentCacheRepository(rdb, cfg.IntentCacheTTL, classifier.Version())
	}

	// Upload storage
	var fileStorage services.FileStorage
	switch cfg.UploadBackend {
	case "s3":
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3)
	default:
		fileStorage, err = storage.NewLocalStorage(cfg.UploadsDir)
	}
	if err != nil {
		return fmt.Errorf("init upload storage: %w", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher.NewBcrypt(cfg.BcryptCost))
	chatService := services.NewChatService(classifier, intentCache)
	uploadService := services.NewUploadService(fileStorage)

	r := newRouter(cfg.StaticDir, authService, chatService, uploadService)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

// authenticator is satisfied by services.AuthService.
type authenticator interface {
	handlers.Registerer
	handlers.Loginer
}

// newRouter mounts the API, the static pages and the Swagger UI.
func newRouter(staticDir string, auth authenticator, chat handlers.ChatResponder, upload handlers.Uploader) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(auth))
		r.Post("/login", handlers.NewLoginHandler(auth))
		r.Post("/chatbot", handlers.NewChatbotHandler(chat))
		r.Post("/upload-media", handlers.NewUploadHandler(upload))
	})

	r.Get("/", handlers.NewPageHandler(filepath.Join(staticDir, "landing.html")))
	r.Get("/chat", handlers.NewPageHandler(filepath.Join(staticDir, "chat.html")))
	r.Handle("/static/*", handlers.NewStaticHandler(staticDir))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
