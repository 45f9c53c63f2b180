// Package ingest classifies inbound CRM payloads and maps them onto the
// canonical lead schema. Detection is a fixed, ordered list of detect/map
// pairs: detectors are non-exclusive heuristics, and an ambiguous payload
// resolves to the first mapper checked (Salesforce > HubSpot > Pipedrive >
// raw fallback). All functions here are pure.
package ingest

import (
	"strings"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/apperr"
)

// Known source names.
const (
	SourceSalesforce = "salesforce"
	SourceHubSpot    = "hubspot"
	SourcePipedrive  = "pipedrive"
	SourceRaw        = "raw"
)

// Mapper pairs a detector predicate with a mapping function for one CRM
// payload shape. Mappers hold no state and never depend on each other.
type Mapper struct {
	Source string
	Detect func(p Payload) bool
	Map    func(p Payload) (domain.Record, *string)
}

// mappers is evaluated in priority order; the raw fallback always matches.
var mappers = []Mapper{
	{Source: SourceSalesforce, Detect: detectSalesforce, Map: mapSalesforce},
	{Source: SourceHubSpot, Detect: detectHubSpot, Map: mapHubSpot},
	{Source: SourcePipedrive, Detect: detectPipedrive, Map: mapPipedrive},
	{Source: SourceRaw, Detect: func(Payload) bool { return true }, Map: mapRaw},
}

// ClassifyAndMap selects a mapper for the payload and produces the canonical
// record plus the source system's external id, when one is present.
//
// An explicit hint (argument or "_source" payload field) naming a known
// source short-circuits detection entirely. A payload whose company domain
// cannot be derived through the documented chain is rejected with a
// validation error; no placeholder domain is ever guessed.
func ClassifyAndMap(payload map[string]any, hint string) (string, domain.Record, *string, error) {
	p := Payload(payload)

	if hint == "" {
		hint, _ = p.stringField(SourceHintKey)
	}
	hint = strings.ToLower(strings.TrimSpace(hint))

	mapper := selectMapper(p, hint)
	record, externalID := mapper.Map(p)

	if record.CompanyDomain == "" {
		return "", domain.Record{}, nil, apperr.Validation("company_domain could not be derived from payload").WithOp("ingest.ClassifyAndMap")
	}

	return mapper.Source, record, externalID, nil
}

func selectMapper(p Payload, hint string) Mapper {
	if hint != "" {
		for _, m := range mappers {
			if m.Source == hint {
				return m
			}
		}
	}

	for _, m := range mappers {
		if m.Detect(p) {
			return m
		}
	}

	// Unreachable: the raw fallback detector always matches.
	return mappers[len(mappers)-1]
}
