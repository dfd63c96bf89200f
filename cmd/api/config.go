package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/ratelimiter"
)

type config struct {
	addr        string
	env         string
	apiURL      string
	logLevel    string
	corsOrigins []string
	db          dbConfig
	auth        authConfig
	upload      uploadConfig
	cache       cacheConfig
	rateLimiter ratelimiter.Config
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

type authConfig struct {
	basic  basicConfig
	token  tokenConfig
	cookie cookieConfig
}

type basicConfig struct {
	user string
	pass string
}

type tokenConfig struct {
	secret          string
	iss             string
	accessTokenExp  time.Duration
	sessionTokenExp time.Duration
}

type cookieConfig struct {
	domain      string
	csrfEnabled bool
}

type uploadConfig struct {
	backend       string
	folder        string
	cloudinaryURL string
	s3Bucket      string
	s3Region      string
	s3PublicBase  string
}

type cacheConfig struct {
	redisAddr     string
	redisPassword string
	ttl           time.Duration
}

func (c config) isProduction() bool {
	return c.env == "production"
}

// loadConfig reads the environment once at startup. Malformed values fall
// back to their defaults.
func loadConfig() config {
	return config{
		addr:        getString("ADDR", ":8000"),
		env:         getString("ENV", "development"),
		apiURL:      getString("EXTERNAL_URL", "localhost:8000"),
		logLevel:    getString("LOG_LEVEL", "info"),
		corsOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    getInt("DB_MAX_CONNS", 30),
			maxIdleTime: getString("DB_MAX_IDLE_TIME", "15m"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret:          os.Getenv("AUTH_TOKEN_SECRET"),
				iss:             getString("AUTH_TOKEN_ISS", "storefront"),
				accessTokenExp:  getDuration("AUTH_ACCESS_TOKEN_EXP", 30*time.Minute),
				sessionTokenExp: getDuration("AUTH_SESSION_TOKEN_EXP", 24*time.Hour),
			},
			cookie: cookieConfig{
				domain:      os.Getenv("AUTH_COOKIE_DOMAIN"),
				csrfEnabled: getBool("AUTH_CSRF_ENABLED", true),
			},
		},
		upload: uploadConfig{
			backend:       getString("UPLOAD_BACKEND", "cloudinary"),
			folder:        getString("UPLOAD_FOLDER", "products"),
			cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
			s3Bucket:      os.Getenv("S3_BUCKET"),
			s3Region:      os.Getenv("S3_REGION"),
			s3PublicBase:  os.Getenv("S3_PUBLIC_BASE_URL"),
		},
		cache: cacheConfig{
			redisAddr:     os.Getenv("REDIS_ADDR"),
			redisPassword: os.Getenv("REDIS_PASSWORD"),
			ttl:           getDuration("CACHE_TTL", 5*time.Minute),
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: getInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Minute,
			Enabled:              getBool("RATE_LIMITER_ENABLED", true),
		},
	}
}

func (c config) validate() error {
	if c.db.addr == "" {
		return fmt.Errorf("DB_ADDR is required")
	}
	if c.auth.token.secret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET is required")
	}
	switch c.upload.backend {
	case "cloudinary", "s3":
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be cloudinary or s3, got %q", c.upload.backend)
	}
	return nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %d\n", key, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %t\n", key, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		fmt.Printf("Invalid %s, defaulting to %s\n", key, fallback)
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
