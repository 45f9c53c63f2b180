package ingest

import (
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/phone"
)

// detectSalesforce recognizes Salesforce Lead exports: PascalCase flat fields,
// numeric employee/revenue figures, or the characteristic 18-character Id.
func detectSalesforce(p Payload) bool {
	if p.hasString("LastName", "Company") {
		return true
	}
	if p.hasNumber("NumberOfEmployees", "AnnualRevenue") {
		return true
	}
	if id, ok := p.stringField("Id"); ok && len(id) == 18 {
		return true
	}
	return false
}

func mapSalesforce(p Payload) (domain.Record, *string) {
	email, _ := p.stringField("Email")
	website, _ := p.stringField("Website")
	company, _ := p.stringField("Company")

	rec := domain.Record{
		CompanyDomain:    deriveCompanyDomain(email, website, company),
		CompanyName:      domain.StringPtr(company),
		ContactEmail:     domain.StringPtr(email),
		ContactFirstName: optionalString(p, "FirstName"),
		ContactLastName:  optionalString(p, "LastName"),
		ContactTitleRaw:  optionalString(p, "Title"),
		CompanyIndustry:  optionalString(p, "Industry"),
		LeadSource:       optionalString(p, "LeadSource"),
	}

	if employees, ok := p.numberField("NumberOfEmployees"); ok {
		rec.CompanyEmployeeBand = domain.EmployeeBandFromCount(employees)
	}
	if revenue, ok := p.numberField("AnnualRevenue"); ok {
		rec.CompanyRevenueBand = domain.RevenueBandFromAmount(revenue)
	}

	state, _ := p.stringField("State")
	country, _ := p.stringField("Country")
	rec.CompanyRegion = domain.StringPtr(joinRegion(state, country))

	if raw, ok := p.stringField("Phone"); ok {
		rec.ContactPhone = domain.StringPtr(phone.NormalizeE164(raw))
	}

	externalID := optionalString(p, "Id")
	return rec, externalID
}

// optionalString reads a payload string field into an optional domain value.
func optionalString(p Payload, key string) *string {
	value, ok := p.stringField(key)
	if !ok {
		return nil
	}
	return &value
}
