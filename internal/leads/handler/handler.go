// Package handler exposes the lead pipeline over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"leadscore_backend/internal/ingest"
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the lead ingestion and scoring endpoints.
type Handler struct {
	svc    *service.Service
	logger *logger.Logger
}

// New creates a leads handler.
func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, logger: log}
}

// Ingest accepts a raw CRM payload, classifies and scores it, stores the
// lead, and queues enrichment. The source hint comes from the query string
// or the payload's _source field.
func (h *Handler) Ingest(c *gin.Context) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.svc.Ingest(c.Request.Context(), tenantID, payload, c.Query("source"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.IngestResponse{
		LeadID:     result.Lead.ID,
		Source:     result.Lead.Source,
		ExternalID: result.Lead.ExternalID,
		Record:     result.Lead.RawRecord,
		Result:     result.Result,
	})
}

// Score runs the pipeline statelessly: nothing is stored and no enrichment
// is queued.
func (h *Handler) Score(c *gin.Context) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return
	}

	var req transport.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	var (
		record domain.Record
		source string
	)
	switch {
	case req.Payload != nil:
		var err error
		source, record, _, err = ingest.ClassifyAndMap(req.Payload, req.Source)
		if httpkit.HandleError(c, err) {
			return
		}
	case req.Record != nil:
		if req.Record.CompanyDomain == "" {
			httpkit.Error(c, http.StatusBadRequest, "record.company_domain is required", nil)
			return
		}
		record = *req.Record
	default:
		httpkit.Error(c, http.StatusBadRequest, "either payload or record is required", nil)
		return
	}

	// An explicit enriched snapshot is scored verbatim; otherwise any
	// enrichment partial is fill-gaps merged into the raw record first.
	if req.EnrichedRecord != nil {
		if req.EnrichedRecord.CompanyDomain == "" {
			httpkit.Error(c, http.StatusBadRequest, "enriched_record.company_domain is required", nil)
			return
		}
		result, err := h.svc.ScoreRecords(c.Request.Context(), tenantID, record, *req.EnrichedRecord)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, transport.ScoreResponse{Source: source, Record: record, EnrichedRecord: req.EnrichedRecord, Result: result})
		return
	}

	result, err := h.svc.Score(c.Request.Context(), tenantID, record, req.Enrichment)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.ScoreResponse{Source: source, Record: record, Result: result}
	if req.Enrichment != nil {
		enriched := domain.MergeEnrichment(record, *req.Enrichment)
		resp.EnrichedRecord = &enriched
	}
	httpkit.OK(c, resp)
}

// List returns the tenant's leads, optionally filtered by tier and source.
func (h *Handler) List(c *gin.Context) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return
	}

	filter := repository.ListFilter{}
	if tier := c.Query("tier"); tier != "" {
		filter.Tier = &tier
	}
	if source := c.Query("source"); source != "" {
		filter.Source = &source
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			filter.Offset = n
		}
	}

	leads, err := h.svc.List(c.Request.Context(), tenantID, filter)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		resp = append(resp, transport.ToLeadResponse(lead))
	}
	httpkit.OK(c, gin.H{"leads": resp})
}

// Get returns a single lead.
func (h *Handler) Get(c *gin.Context) {
	tenantID, leadID, ok := h.leadScope(c)
	if !ok {
		return
	}

	lead, err := h.svc.Get(c.Request.Context(), leadID, tenantID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToLeadResponse(lead))
}

// GetScore returns the lead's most recent scoring run, breakdowns included.
func (h *Handler) GetScore(c *gin.Context) {
	tenantID, leadID, ok := h.leadScope(c)
	if !ok {
		return
	}

	run, err := h.svc.GetLatestRun(c.Request.Context(), leadID, tenantID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToScoringRunResponse(run))
}

// Rescore recomputes the lead's score with the tenant's current config.
func (h *Handler) Rescore(c *gin.Context) {
	tenantID, leadID, ok := h.leadScope(c)
	if !ok {
		return
	}

	result, err := h.svc.Rescore(c.Request.Context(), leadID, tenantID, repository.TriggerRescore)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"lead_id": leadID, "result": result})
}

func (h *Handler) leadScope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return uuid.Nil, uuid.Nil, false
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid lead id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, leadID, true
}
