package ingest

import (
	"strconv"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/phone"
)

// hubspotFlatFields are the lowercase flat fields whose presence identifies a
// HubSpot contact payload even without the vid/properties envelope.
var hubspotFlatFields = []string{"firstname", "lastname", "jobtitle", "lifecyclestage", "hs_lead_status"}

// detectHubSpot recognizes HubSpot contact payloads: a numeric vid, an
// object-valued properties envelope, or the characteristic flat fields.
func detectHubSpot(p Payload) bool {
	if _, ok := p.strictNumberField("vid"); ok {
		return true
	}
	if _, ok := p.objectField("properties"); ok {
		return true
	}
	return p.hasString(hubspotFlatFields...)
}

// hubspotString reads a HubSpot field, trying the nested
// properties.<key>.value shape first and falling back to the flat shape.
func hubspotString(p Payload, key string) (string, bool) {
	if props, ok := p.objectField("properties"); ok {
		if entry, ok := props.objectField(key); ok {
			if value, ok := entry.stringField("value"); ok {
				return value, true
			}
		}
	}
	return p.stringField(key)
}

// hubspotNumber reads a HubSpot numeric field through the same nested-first
// lookup; HubSpot serializes numbers as strings inside property envelopes.
func hubspotNumber(p Payload, key string) (float64, bool) {
	if props, ok := p.objectField("properties"); ok {
		if entry, ok := props.objectField(key); ok {
			if value, ok := entry.stringField("value"); ok {
				parsed, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return 0, false
				}
				return parsed, true
			}
			if value, ok := entry.numberField("value"); ok {
				return value, true
			}
		}
	}
	return p.numberField(key)
}

func mapHubSpot(p Payload) (domain.Record, *string) {
	email, _ := hubspotString(p, "email")
	website, _ := hubspotString(p, "website")
	company, _ := hubspotString(p, "company")

	rec := domain.Record{
		CompanyDomain:    deriveCompanyDomain(email, website, company),
		CompanyName:      domain.StringPtr(company),
		ContactEmail:     domain.StringPtr(email),
		ContactFirstName: hubspotOptional(p, "firstname"),
		ContactLastName:  hubspotOptional(p, "lastname"),
		ContactTitleRaw:  hubspotOptional(p, "jobtitle"),
		CompanyIndustry:  hubspotOptional(p, "industry"),
		LeadSource:       hubspotOptional(p, "hs_analytics_source"),
		UseCase:          hubspotOptional(p, "message"),
	}

	if employees, ok := hubspotNumber(p, "numemployees"); ok {
		rec.CompanyEmployeeBand = domain.EmployeeBandFromCount(employees)
	} else if employees, ok := hubspotNumber(p, "numberofemployees"); ok {
		rec.CompanyEmployeeBand = domain.EmployeeBandFromCount(employees)
	}
	if revenue, ok := hubspotNumber(p, "annualrevenue"); ok {
		rec.CompanyRevenueBand = domain.RevenueBandFromAmount(revenue)
	}

	state, _ := hubspotString(p, "state")
	country, _ := hubspotString(p, "country")
	rec.CompanyRegion = domain.StringPtr(joinRegion(state, country))

	if raw, ok := hubspotString(p, "phone"); ok {
		rec.ContactPhone = domain.StringPtr(phone.NormalizeE164(raw))
	}

	var externalID *string
	if vid, ok := p.numberField("vid"); ok {
		id := strconv.FormatInt(int64(vid), 10)
		externalID = &id
	}
	return rec, externalID
}

func hubspotOptional(p Payload, key string) *string {
	value, ok := hubspotString(p, key)
	if !ok {
		return nil
	}
	return &value
}
