package ingest

import (
	"testing"

	"leadscore_backend/internal/leads/domain"
)

func TestPipedrive_PrimaryContactPointWins(t *testing.T) {
	payload := map[string]any{
		"person_id": float64(42),
		"name":      "Ada Lovelace",
		"org_name":  "Tessier Industries",
		"email": []any{
			map[string]any{"value": "ada.old@tessier.com", "primary": false},
			map[string]any{"value": "ada@tessier.com", "primary": true},
		},
		"value": float64(50_000),
	}

	source, record, externalID, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourcePipedrive {
		t.Fatalf("expected source pipedrive, got %s", source)
	}
	if record.ContactEmail == nil || *record.ContactEmail != "ada@tessier.com" {
		t.Fatalf("expected primary email to win, got %v", record.ContactEmail)
	}
	if record.CompanyDomain != "tessier.com" {
		t.Fatalf("expected domain tessier.com, got %s", record.CompanyDomain)
	}
	if record.ContactFirstName == nil || *record.ContactFirstName != "Ada" {
		t.Fatalf("expected first name Ada, got %v", record.ContactFirstName)
	}
	if record.ContactLastName == nil || *record.ContactLastName != "Lovelace" {
		t.Fatalf("expected last name Lovelace, got %v", record.ContactLastName)
	}
	if record.DealBand == nil || *record.DealBand != domain.DealMid {
		t.Fatalf("expected deal band Mid for 50k, got %v", record.DealBand)
	}
	if externalID == nil || *externalID != "42" {
		t.Fatalf("expected external id 42, got %v", externalID)
	}
}

func TestPipedrive_FirstEntryWinsWithoutPrimary(t *testing.T) {
	payload := map[string]any{
		"person_id": float64(7),
		"org_name":  "Wayne Enterprises",
		"email": []any{
			map[string]any{"value": "bruce@wayne.com"},
			map[string]any{"value": "alfred@wayne.com"},
		},
	}

	_, record, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ContactEmail == nil || *record.ContactEmail != "bruce@wayne.com" {
		t.Fatalf("expected first entry to win, got %v", record.ContactEmail)
	}
}

func TestPipedrive_OrgObjectNameAndSlugDomain(t *testing.T) {
	payload := map[string]any{
		"org_id": map[string]any{"name": "Hooli, Inc."},
	}

	source, record, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourcePipedrive {
		t.Fatalf("expected org_id object to detect pipedrive, got %s", source)
	}
	if record.CompanyName == nil || *record.CompanyName != "Hooli, Inc." {
		t.Fatalf("expected org name from org_id object, got %v", record.CompanyName)
	}
	if record.CompanyDomain != "hooliinc.com" {
		t.Fatalf("expected slugified domain hooliinc.com, got %s", record.CompanyDomain)
	}
}

func TestPipedrive_ExplicitNameFieldsBeatCombinedName(t *testing.T) {
	payload := map[string]any{
		"person_id":  float64(3),
		"org_name":   "Acme",
		"first_name": "Grace",
		"last_name":  "Hopper",
		"name":       "Wrong Name",
		"deal_value": float64(250_000),
		"country":    "Netherlands",
	}

	_, record, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ContactFirstName == nil || *record.ContactFirstName != "Grace" {
		t.Fatalf("expected explicit first name, got %v", record.ContactFirstName)
	}
	if record.ContactLastName == nil || *record.ContactLastName != "Hopper" {
		t.Fatalf("expected explicit last name, got %v", record.ContactLastName)
	}
	if record.DealBand == nil || *record.DealBand != domain.DealEnterprise {
		t.Fatalf("expected deal band Enterprise for 250k, got %v", record.DealBand)
	}
	if record.CompanyRegion == nil || *record.CompanyRegion != "Netherlands" {
		t.Fatalf("expected country as region, got %v", record.CompanyRegion)
	}
}

func TestPipedrive_ContactPointArrayAloneTriggersDetection(t *testing.T) {
	payload := map[string]any{
		"email": []any{
			map[string]any{"value": "ada@tessier.com", "primary": true},
		},
	}

	source, _, _, err := ClassifyAndMap(payload, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourcePipedrive {
		t.Fatalf("expected contact point list to detect pipedrive, got %s", source)
	}
}
