package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	apihttp "storefront/internal/http"
	"storefront/internal/service"
	"storefront/internal/tokenstore"
	"storefront/internal/validation"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	httpClient := &http.Client{Timeout: cfg.APITimeout}
	// Cada request usa su propia cookie como store; el store base nunca se consulta.
	apiClient := api.NewClient(cfg.APIBaseURL, httpClient, tokenstore.NewMemoryStore(cfg.AuthTokenMaxAge), logger)

	cookie := tokenstore.DefaultCookiePolicy(cfg.IsProduction())
	cookie.Name = cfg.AuthCookieName
	cookie.MaxAge = cfg.AuthTokenMaxAge
	cookie.HTTPOnly = cfg.AuthCookieHTTPOnly
	if !cfg.IsProduction() {
		logger.Warn("auth cookie without Secure flag", zap.String("env", cfg.Environment))
	}

	var resendLimiter service.ResendLimiter
	if redisClient := connectRedis(ctx, cfg, logger); redisClient != nil {
		defer redisClient.Close()
		resendLimiter = service.NewRedisResendLimiter(redisClient, cfg.ResendWindow, cfg.ResendMax)
	}

	sessionHandler := apihttp.NewSessionHandler(logger, apiClient, validation.New(nil), cookie, cfg.LoginPath).
		WithResendLimiter(resendLimiter)
	currencyHandler := apihttp.NewCurrencyHandler(cfg.DefaultLocale)
	catalogHandler := apihttp.NewCatalogHandler(logger, apiClient, cookie)
	router := apihttp.NewRouter(logger, sessionHandler, currencyHandler, catalogHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting storefront server",
		zap.String("port", cfg.HTTPPort),
		zap.String("api_base", cfg.APIBaseURL),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// connectRedis devuelve nil si REDIS_ADDR no esta configurado o redis no responde.
func connectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctxPing).Err(); err != nil {
		logger.Warn("redis ping failed", zap.Error(err))
		_ = redisClient.Close()
		return nil
	}
	return redisClient
}
