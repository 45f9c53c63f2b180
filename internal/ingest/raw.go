package ingest

import (
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/phone"
)

// mapRaw is the fallback mapper: the payload is treated as already-canonical
// (or direct API input) and fields pass straight through by name. The only
// inference performed is deriving company_domain from the contact email's
// domain part when it is absent.
func mapRaw(p Payload) (domain.Record, *string) {
	companyDomain, _ := p.stringField("company_domain")
	email, _ := p.stringField("contact_email")
	if companyDomain == "" {
		companyDomain = emailDomain(email)
	}

	rec := domain.Record{
		CompanyDomain:       companyDomain,
		CompanyName:         optionalString(p, "company_name"),
		CompanyIndustry:     optionalString(p, "company_industry"),
		CompanyRegion:       optionalString(p, "company_region"),
		CompanyTechStack:    optionalString(p, "company_tech_stack"),
		ContactEmail:        domain.StringPtr(email),
		ContactFirstName:    optionalString(p, "contact_first_name"),
		ContactLastName:     optionalString(p, "contact_last_name"),
		ContactRoleFunction: optionalString(p, "contact_role_function"),
		ContactTitleRaw:     optionalString(p, "contact_title_raw"),
		ContactGeo:          optionalString(p, "contact_geo"),
		UseCase:             optionalString(p, "use_case"),
		LeadSource:          optionalString(p, "lead_source"),
	}

	if value, ok := p.stringField("company_employee_band"); ok {
		rec.CompanyEmployeeBand = domain.ParseEmployeeBand(value)
	} else if count, ok := p.numberField("company_employee_count"); ok {
		rec.CompanyEmployeeBand = domain.EmployeeBandFromCount(count)
	}

	if value, ok := p.stringField("company_revenue_band"); ok {
		rec.CompanyRevenueBand = domain.ParseRevenueBand(value)
	} else if amount, ok := p.numberField("company_annual_revenue"); ok {
		rec.CompanyRevenueBand = domain.RevenueBandFromAmount(amount)
	}

	if value, ok := p.stringField("contact_seniority"); ok {
		rec.ContactSeniority = domain.ParseSeniorityBand(value)
	}
	if value, ok := p.stringField("deal_band"); ok {
		rec.DealBand = domain.ParseDealBand(value)
	} else if amount, ok := p.numberField("deal_value"); ok {
		rec.DealBand = domain.DealBandFromValue(amount)
	}
	if value, ok := p.stringField("urgency_band"); ok {
		rec.UrgencyBand = domain.ParseUrgencyBand(value)
	}

	if raw, ok := p.stringField("contact_phone"); ok {
		rec.ContactPhone = domain.StringPtr(phone.NormalizeE164(raw))
	}

	externalID := optionalString(p, "external_id")
	return rec, externalID
}
