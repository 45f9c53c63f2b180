// The worker consumes queued enrichment tasks and runs the merge-and-rescore
// pipeline for each lead.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadscore_backend/internal/adapters"
	"leadscore_backend/internal/config"
	"leadscore_backend/internal/enrichment"
	"leadscore_backend/internal/leads"
	"leadscore_backend/internal/notification"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/internal/tenants"
	"leadscore_backend/platform/db"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.AsynqQueue)

	if cfg.RedisURL == "" {
		panic("REDIS_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic("invalid REDIS_URL: " + err.Error())
	}
	redisClient := redis.NewClient(opt)
	defer redisClient.Close()

	val := validator.New()

	tenantsModule := tenants.NewModule(pool, val, log)
	leadsModule := leads.NewModule(pool, tenantsModule.Service(), log)

	if cfg.EnrichmentBaseURL != "" {
		enrichmentModule := enrichment.NewModule(cfg.EnrichmentBaseURL, cfg.EnrichmentAPIKey, redisClient, cfg.EnrichmentCacheTTL, log)
		leadsModule.SetEnricher(enrichmentModule.Service())
	} else {
		log.Warn("ENRICHMENT_BASE_URL not configured; enrichment tasks rescore without new data")
	}

	if cfg.EmailEnabled {
		sender := notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFromAddress, cfg.EmailFromName)
		leadsModule.SetNotifier(notification.NewNotifier(sender, log))
		leadsModule.SetTenantReader(adapters.NewTenantReaderAdapter(tenantsModule.Service()))
	}

	worker, err := scheduler.NewWorker(cfg.RedisURL, cfg.AsynqQueue, cfg.AsynqConcurrency, leadsModule.Service(), log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("worker stopped")
}
