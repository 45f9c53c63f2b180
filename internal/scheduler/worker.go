package scheduler

import (
	"context"
	"fmt"

	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EnrichmentApplier runs the enrichment and rescore pipeline for a lead.
// The leads service implements it; the indirection keeps this package from
// importing the leads module.
type EnrichmentApplier interface {
	ApplyEnrichment(ctx context.Context, leadID, tenantID uuid.UUID) error
}

// Worker consumes queued tasks and dispatches them to their handlers.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	enricher EnrichmentApplier
	log      *logger.Logger
}

// NewWorker creates the task worker. concurrency below 1 falls back to 10.
func NewWorker(redisURL, queue string, concurrency int, enricher EnrichmentApplier, log *logger.Logger) (*Worker, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	if queue == "" {
		queue = "default"
	}
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		enricher: enricher,
		log:      log,
	}

	mux.HandleFunc(TaskLeadEnrich, w.handleLeadEnrich)

	return w, nil
}

func (w *Worker) handleLeadEnrich(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadEnrichPayload(task)
	if err != nil {
		return err
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err != nil {
		return err
	}
	tenantID, err := uuid.Parse(payload.TenantID)
	if err != nil {
		return err
	}

	return w.enricher.ApplyEnrichment(ctx, leadID, tenantID)
}

// Run serves tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("task worker stopped", "error", err)
	}
}
