// Package client provides the HTTP client for the firmographic enrichment
// provider.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/logger"
)

const defaultHTTPTimeout = 10 * time.Second

// Client calls the enrichment provider's lookup endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates an enrichment client. baseURL points at the provider's API
// root; apiKey may be empty for providers without auth.
func New(baseURL, apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}
}

type lookupRequest struct {
	CompanyDomain string  `json:"company_domain"`
	ContactEmail  *string `json:"contact_email,omitempty"`
}

// lookupResponse mirrors the provider's response. Every field is optional;
// only fields the provider resolved are present.
type lookupResponse struct {
	CompanyName      *string  `json:"company_name"`
	Industry         *string  `json:"industry"`
	EmployeeCount    *float64 `json:"employee_count"`
	AnnualRevenue    *float64 `json:"annual_revenue"`
	Region           *string  `json:"region"`
	TechStack        *string  `json:"tech_stack"`
	ContactFirstName *string  `json:"contact_first_name"`
	ContactLastName  *string  `json:"contact_last_name"`
	ContactTitle     *string  `json:"contact_title"`
	ContactSeniority *string  `json:"contact_seniority"`
	ContactGeo       *string  `json:"contact_geo"`
}

// Lookup fetches firmographic data for a company domain. The returned record
// carries only the fields the provider resolved; counts are translated into
// the canonical bands. A 404 from the provider means "unknown company" and
// returns nil without error.
func (c *Client) Lookup(ctx context.Context, companyDomain string, contactEmail *string) (*domain.Record, error) {
	body, err := json.Marshal(lookupRequest{CompanyDomain: companyDomain, ContactEmail: contactEmail})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/companies/lookup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("enrichment request error", "status", resp.StatusCode, "company_domain", companyDomain)
		return nil, fmt.Errorf("enrichment provider status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return toRecord(companyDomain, payload), nil
}

func toRecord(companyDomain string, payload lookupResponse) *domain.Record {
	record := &domain.Record{
		CompanyDomain:    companyDomain,
		CompanyName:      payload.CompanyName,
		CompanyIndustry:  payload.Industry,
		CompanyRegion:    payload.Region,
		CompanyTechStack: payload.TechStack,
		ContactFirstName: payload.ContactFirstName,
		ContactLastName:  payload.ContactLastName,
		ContactTitleRaw:  payload.ContactTitle,
		ContactGeo:       payload.ContactGeo,
	}

	if payload.EmployeeCount != nil {
		record.CompanyEmployeeBand = domain.EmployeeBandFromCount(*payload.EmployeeCount)
	}
	if payload.AnnualRevenue != nil {
		record.CompanyRevenueBand = domain.RevenueBandFromAmount(*payload.AnnualRevenue)
	}
	if payload.ContactSeniority != nil {
		record.ContactSeniority = domain.ParseSeniorityBand(*payload.ContactSeniority)
	}

	return record
}
