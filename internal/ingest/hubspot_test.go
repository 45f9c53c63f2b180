package ingest

import (
	"testing"

	"leadscore_backend/internal/leads/domain"
)

func TestHubSpot_NestedPropertiesEnvelope(t *testing.T) {
	payload := map[string]any{
		"vid": float64(512),
		"properties": map[string]any{
			"email":        map[string]any{"value": "jane@globex.com"},
			"company":      map[string]any{"value": "Globex"},
			"jobtitle":     map[string]any{"value": "Director of Operations"},
			"numemployees": map[string]any{"value": "120"},
		},
	}

	source, record, externalID, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceHubSpot {
		t.Fatalf("expected source hubspot, got %s", source)
	}
	if record.CompanyDomain != "globex.com" {
		t.Fatalf("expected domain globex.com, got %s", record.CompanyDomain)
	}
	if record.ContactTitleRaw == nil || *record.ContactTitleRaw != "Director of Operations" {
		t.Fatalf("expected nested jobtitle, got %v", record.ContactTitleRaw)
	}
	if record.CompanyEmployeeBand == nil || *record.CompanyEmployeeBand != domain.Employees51To200 {
		t.Fatalf("expected employee band 51-200 from string count, got %v", record.CompanyEmployeeBand)
	}
	if externalID == nil || *externalID != "512" {
		t.Fatalf("expected external id 512, got %v", externalID)
	}
}

func TestHubSpot_FlatShape(t *testing.T) {
	payload := map[string]any{
		"firstname":           "Jane",
		"lastname":            "Smith",
		"email":               "jane@initech.io",
		"hs_analytics_source": "ORGANIC_SEARCH",
		"message":             "need workflow automation",
		"annualrevenue":       float64(4_000_000),
	}

	source, record, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceHubSpot {
		t.Fatalf("expected source hubspot, got %s", source)
	}
	if record.ContactFirstName == nil || *record.ContactFirstName != "Jane" {
		t.Fatalf("expected first name Jane, got %v", record.ContactFirstName)
	}
	if record.LeadSource == nil || *record.LeadSource != "ORGANIC_SEARCH" {
		t.Fatalf("expected lead source ORGANIC_SEARCH, got %v", record.LeadSource)
	}
	if record.UseCase == nil || *record.UseCase != "need workflow automation" {
		t.Fatalf("expected use case from message, got %v", record.UseCase)
	}
	if record.CompanyRevenueBand == nil || *record.CompanyRevenueBand != domain.Revenue1To10M {
		t.Fatalf("expected revenue band 1-10M, got %v", record.CompanyRevenueBand)
	}
}

func TestHubSpot_NestedValueWinsOverFlat(t *testing.T) {
	payload := map[string]any{
		"properties": map[string]any{
			"email": map[string]any{"value": "nested@acme.com"},
		},
		"email": "flat@other.com",
	}

	_, record, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ContactEmail == nil || *record.ContactEmail != "nested@acme.com" {
		t.Fatalf("expected nested email to win, got %v", record.ContactEmail)
	}
}

func TestHubSpot_NumericStringVidIsNotDetectionEvidence(t *testing.T) {
	payload := map[string]any{
		"vid":           "512",
		"contact_email": "kim@vandelay.com",
	}

	source, _, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceRaw {
		t.Fatalf("expected string vid to fall through to raw, got %s", source)
	}
}
