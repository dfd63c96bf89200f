package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"storefront/internal/auth"
	"storefront/internal/blob"
	"storefront/internal/cache"
	"storefront/internal/db"
	"storefront/internal/domain/storage"
	"storefront/internal/ratelimiter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a coloured console logger at the given level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Storefront API
//	@description	Catalog backend: categories, brands and products, with an admin surface.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/api
//	@securityDefinitions.apikey	AdminCookie
//	@in							cookie
//	@name						admin_token

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := loadConfig()
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Database
	pool, err := db.New(cfg.db.addr, int32(cfg.db.maxConns), cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	// Blob storage
	uploader, err := newUploader(context.Background(), cfg.upload)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infow("upload backend ready", "backend", cfg.upload.backend)

	// Cache and rate limiter; redis is optional
	var (
		listingCache cache.Cache = cache.Noop{}
		limiter      ratelimiter.Limiter
	)
	if cfg.cache.redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.cache.redisAddr,
			Password: cfg.cache.redisPassword,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnw("redis unreachable, caching disabled", "addr", cfg.cache.redisAddr, "error", err)
		} else {
			listingCache = cache.NewRedisCache(rdb, cfg.cache.ttl)
			limiter = ratelimiter.NewRedisLimiter(rdb, cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
			logger.Infow("redis connected", "addr", cfg.cache.redisAddr)
		}
		cancel()
	}
	if limiter == nil {
		fw := ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
		defer fw.Stop()
		limiter = fw
	}

	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
	)

	app := &application{
		config:        cfg,
		store:         store,
		logger:        logger,
		uploader:      uploader,
		cache:         listingCache,
		authenticator: jwtAuthenticator,
		rateLimiter:   limiter,
	}

	// Metrics collected at /api/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return db.PoolStats(pool)
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func newUploader(ctx context.Context, cfg uploadConfig) (blob.Uploader, error) {
	switch cfg.backend {
	case "s3":
		return blob.NewS3Uploader(ctx, cfg.s3Bucket, cfg.s3Region, cfg.s3PublicBase)
	default:
		return blob.NewCloudinaryUploader(cfg.cloudinaryURL)
	}
}
