// The rescore backfill walks every stored lead and recomputes its score with
// the tenant's current scoring config. Run it after changing weights or tier
// thresholds so stored scores match what new leads get.
package main

import (
	"context"
	"flag"
	"time"

	"leadscore_backend/internal/config"
	"leadscore_backend/internal/leads"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/tenants"
	"leadscore_backend/platform/db"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize   = 50
	concurrency = 5
)

func main() {
	tenantFlag := flag.String("tenant", "", "restrict the backfill to one tenant id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting lead rescore backfill")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	val := validator.New()
	tenantsModule := tenants.NewModule(pool, val, log)
	leadsModule := leads.NewModule(pool, tenantsModule.Service(), log)
	svc := leadsModule.Service()

	tenantIDs, err := resolveTenants(ctx, pool, *tenantFlag)
	if err != nil {
		log.Error("failed to resolve tenants", "error", err)
		panic("failed to resolve tenants: " + err.Error())
	}

	var processed int
	for _, tenantID := range tenantIDs {
		cursorTime := time.Time{}
		cursorID := uuid.Nil

		for {
			page, err := svc.ListPage(ctx, tenantID, cursorTime, cursorID, batchSize)
			if err != nil {
				log.Error("failed to list leads", "tenantId", tenantID, "error", err)
				break
			}
			if len(page) == 0 {
				break
			}

			cursorTime = page[len(page)-1].CreatedAt
			cursorID = page[len(page)-1].ID

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(concurrency)
			for _, lead := range page {
				lead := lead
				g.Go(func() error {
					if _, err := svc.Rescore(gctx, lead.ID, tenantID, repository.TriggerBackfill); err != nil {
						log.Error("failed to rescore lead", "leadId", lead.ID, "tenantId", tenantID, "error", err)
						return nil
					}
					return nil
				})
			}
			_ = g.Wait()

			processed += len(page)
			log.Info("batch rescored", "tenantId", tenantID, "processed", processed)
		}
	}

	log.Info("lead rescore backfill completed", "processed", processed)
}

func resolveTenants(ctx context.Context, pool *pgxpool.Pool, tenantFlag string) ([]uuid.UUID, error) {
	if tenantFlag != "" {
		id, err := uuid.Parse(tenantFlag)
		if err != nil {
			return nil, err
		}
		return []uuid.UUID{id}, nil
	}

	rows, err := pool.Query(ctx, `SELECT id FROM tenants ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
