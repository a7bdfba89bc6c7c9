// Command seed populates the database with a small demo feedback corpus.
// Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/adapter/postgres"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/adapter/redis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/app"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/config"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	feedbackRepo := postgres.NewFeedbackRepo(pool)
	aggregateCache := redis.NewAggregateCacheRepo(redisClient, cfg.AggregateCacheTTL)
	appSvc := app.NewService(feedbackRepo, aggregateCache, clockwork.NewRealClock(), nil)

	created, err := appSvc.Seed(ctx)
	if err != nil {
		slog.Error("Seeding failed", "created", created, "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding complete", "created", created)
}
