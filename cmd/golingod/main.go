// Command golingod serves HTML documents from a public directory and
// translates their visible text on the fly per the ?lang= query parameter.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/penlabs/golingo"
	"github.com/penlabs/golingo/cache"
	"github.com/penlabs/golingo/provider"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger(os.Getenv("DEBUG") != "")
	defer logger.Sync() //nolint:errcheck

	srv, err := newServer(logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logger.Info("listening",
		zap.String("addr", ":"+port),
		zap.String("public_dir", srv.publicDir),
		zap.String("version", golingo.FullVersion()))

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newLogger builds a production zap logger with readable timestamps.
func newLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		panic("building logger: " + err.Error())
	}
	return logger
}

// newServer wires the engine from the environment:
//
//	DEEPL_API_KEY   provider credential (empty -> passthrough)
//	DEEPL_API_URL   provider endpoint override
//	BRAND_TOKENS    comma-separated brand names to shield
//	PUBLIC_DIR      document root (default "public")
//	REDIS_URL       enable the Redis translation cache
//	CACHE_TTL       enable the in-memory cache, seconds
//	RATE_LIMIT_RPM  cap provider calls per minute
func newServer(logger *zap.Logger) (*server, error) {
	deepl := provider.NewDeepLProvider(provider.DeepLConfig{
		APIKey:   os.Getenv("DEEPL_API_KEY"),
		Endpoint: os.Getenv("DEEPL_API_URL"),
	})
	if os.Getenv("DEEPL_API_KEY") == "" {
		logger.Warn("DEEPL_API_KEY not set, translation degrades to passthrough")
	}

	var batcher golingo.BatchTranslator = deepl
	if rpm := intEnv("RATE_LIMIT_RPM"); rpm > 0 {
		batcher = golingo.NewRateLimitedBatcher(batcher, golingo.RateLimitConfig{
			RequestsPerMinute: rpm,
		})
	}

	opts := []golingo.Option{golingo.WithLogger(logger)}

	if brands := os.Getenv("BRAND_TOKENS"); brands != "" {
		var tokens []string
		for _, t := range strings.Split(brands, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		opts = append(opts, golingo.WithBrandTokens(tokens))
	}

	switch {
	case os.Getenv("REDIS_URL") != "":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			TTL: intEnv("CACHE_TTL"),
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		opts = append(opts, golingo.WithCache(redisCache))
		logger.Info("translation cache: redis")
	case intEnv("CACHE_TTL") > 0:
		opts = append(opts, golingo.WithCache(cache.NewInMemoryCache(intEnv("CACHE_TTL"))))
		logger.Info("translation cache: in-memory", zap.Int("ttl_seconds", intEnv("CACHE_TTL")))
	}

	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	if _, err := os.Stat(publicDir); err != nil {
		logger.Warn("public directory not found, falling back to working directory for files",
			zap.String("dir", publicDir))
	}

	return &server{
		engine:    golingo.New(batcher, opts...),
		publicDir: publicDir,
		logger:    logger,
	}, nil
}

func intEnv(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return n
}
