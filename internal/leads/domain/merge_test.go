package domain

import "testing"

func TestMergeEnrichment_FillsOnlyAbsentFields(t *testing.T) {
	original := Record{
		CompanyDomain: "acme.com",
		CompanyName:   StringPtr("Acme"),
		ContactEmail:  StringPtr("john@acme.com"),
	}
	industry := "Software"
	seniority := SeniorityVP
	enrichment := Record{
		CompanyDomain:    "provider-says-other.com",
		CompanyName:      StringPtr("ACME Corporation"),
		CompanyIndustry:  &industry,
		ContactSeniority: &seniority,
	}

	merged := MergeEnrichment(original, enrichment)

	if merged.CompanyDomain != "acme.com" {
		t.Fatalf("company domain must never be overwritten, got %s", merged.CompanyDomain)
	}
	if *merged.CompanyName != "Acme" {
		t.Fatalf("original company name must win, got %s", *merged.CompanyName)
	}
	if merged.CompanyIndustry == nil || *merged.CompanyIndustry != "Software" {
		t.Fatalf("expected industry filled from enrichment, got %v", merged.CompanyIndustry)
	}
	if merged.ContactSeniority == nil || *merged.ContactSeniority != SeniorityVP {
		t.Fatalf("expected seniority filled from enrichment, got %v", merged.ContactSeniority)
	}
}

func TestMergeEnrichment_DoesNotMutateOriginal(t *testing.T) {
	original := Record{CompanyDomain: "acme.com"}
	enrichment := Record{CompanyName: StringPtr("Acme")}

	merged := MergeEnrichment(original, enrichment)

	if original.CompanyName != nil {
		t.Fatalf("original must stay untouched, got company name %s", *original.CompanyName)
	}
	if merged.CompanyName == nil || *merged.CompanyName != "Acme" {
		t.Fatalf("expected merged company name Acme, got %v", merged.CompanyName)
	}
}

func TestMergeEnrichment_EmptyEnrichmentIsIdentity(t *testing.T) {
	band := Employees51To200
	original := Record{
		CompanyDomain:       "acme.com",
		CompanyEmployeeBand: &band,
		UseCase:             StringPtr("billing automation"),
	}

	merged := MergeEnrichment(original, Record{})

	if merged.CompanyDomain != original.CompanyDomain {
		t.Fatalf("expected identical domain, got %s", merged.CompanyDomain)
	}
	if *merged.CompanyEmployeeBand != band {
		t.Fatalf("expected identical employee band, got %s", *merged.CompanyEmployeeBand)
	}
	if *merged.UseCase != "billing automation" {
		t.Fatalf("expected identical use case, got %s", *merged.UseCase)
	}
}

func TestStringPtr_EmptyReadsAsAbsent(t *testing.T) {
	if got := StringPtr(""); got != nil {
		t.Fatalf("expected nil for empty string, got %q", *got)
	}
	if got := StringPtr("x"); got == nil || *got != "x" {
		t.Fatalf("expected pointer to x, got %v", got)
	}
}
