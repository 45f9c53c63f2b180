package ingest

import (
	"strconv"
	"strings"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/phone"
)

// detectPipedrive recognizes Pipedrive person/deal payloads: snake_case ids,
// an org reference, or email/phone given as arrays of {value, primary}.
func detectPipedrive(p Payload) bool {
	if p.hasNumber("person_id", "owner_id") {
		return true
	}
	if _, ok := p.strictNumberField("org_id"); ok {
		return true
	}
	if _, ok := p.objectField("org_id"); ok {
		return true
	}
	if p.hasString("org_name") {
		return true
	}
	return isContactPointList(p, "email") || isContactPointList(p, "phone")
}

// isContactPointList reports whether the field is a Pipedrive-style array of
// {value, primary} entries.
func isContactPointList(p Payload, key string) bool {
	entries, ok := p.arrayField(key)
	if !ok || len(entries) == 0 {
		return false
	}
	entry, ok := entries[0].(map[string]any)
	if !ok {
		return false
	}
	_, hasValue := Payload(entry).stringField("value")
	return hasValue
}

// contactPoint resolves a Pipedrive email/phone field, which may be a plain
// string or an array of {value, primary} entries. The primary entry wins,
// falling back to the first entry with a value.
func contactPoint(p Payload, key string) string {
	if value, ok := p.stringField(key); ok {
		return value
	}

	entries, ok := p.arrayField(key)
	if !ok {
		return ""
	}

	first := ""
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		value, ok := Payload(entry).stringField("value")
		if !ok {
			continue
		}
		if first == "" {
			first = value
		}
		if primary, ok := entry["primary"].(bool); ok && primary {
			return value
		}
	}
	return first
}

func mapPipedrive(p Payload) (domain.Record, *string) {
	email := contactPoint(p, "email")
	orgName := pipedriveOrgName(p)

	rec := domain.Record{
		CompanyDomain:   deriveCompanyDomain(email, "", orgName),
		CompanyName:     domain.StringPtr(orgName),
		ContactEmail:    domain.StringPtr(email),
		ContactTitleRaw: optionalString(p, "job_title"),
		CompanyIndustry: optionalString(p, "industry"),
		LeadSource:      optionalString(p, "source"),
	}

	first, last := pipedrivePersonName(p)
	rec.ContactFirstName = domain.StringPtr(first)
	rec.ContactLastName = domain.StringPtr(last)

	if value, ok := p.numberField("value"); ok {
		rec.DealBand = domain.DealBandFromValue(value)
	} else if value, ok := p.numberField("deal_value"); ok {
		rec.DealBand = domain.DealBandFromValue(value)
	}

	if country, ok := p.stringField("country"); ok {
		rec.CompanyRegion = domain.StringPtr(country)
	}

	if raw := contactPoint(p, "phone"); raw != "" {
		rec.ContactPhone = domain.StringPtr(phone.NormalizeE164(raw))
	}

	var externalID *string
	if personID, ok := p.numberField("person_id"); ok {
		id := strconv.FormatInt(int64(personID), 10)
		externalID = &id
	}
	return rec, externalID
}

// pipedriveOrgName reads org_name, or the name inside an object-valued org_id.
func pipedriveOrgName(p Payload) string {
	if name, ok := p.stringField("org_name"); ok {
		return name
	}
	if org, ok := p.objectField("org_id"); ok {
		if name, ok := org.stringField("name"); ok {
			return name
		}
	}
	return ""
}

// pipedrivePersonName prefers explicit first/last fields and otherwise splits
// the combined name on the first space.
func pipedrivePersonName(p Payload) (string, string) {
	first, _ := p.stringField("first_name")
	last, _ := p.stringField("last_name")
	if first != "" || last != "" {
		return first, last
	}

	name, ok := p.stringField("name")
	if !ok {
		name, ok = p.stringField("person_name")
		if !ok {
			return "", ""
		}
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
