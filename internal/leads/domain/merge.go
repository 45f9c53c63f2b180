package domain

// MergeEnrichment combines the original record with a partial enrichment
// result. The original always wins: enrichment only fills fields the original
// left absent. CompanyDomain is never overwritten, so the identity under which
// the lead was ingested survives any provider response. The original is not
// mutated; the merged record is a fresh value.
func MergeEnrichment(original Record, enrichment Record) Record {
	merged := original

	if merged.CompanyName == nil {
		merged.CompanyName = enrichment.CompanyName
	}
	if merged.CompanyIndustry == nil {
		merged.CompanyIndustry = enrichment.CompanyIndustry
	}
	if merged.CompanyEmployeeBand == nil {
		merged.CompanyEmployeeBand = enrichment.CompanyEmployeeBand
	}
	if merged.CompanyRevenueBand == nil {
		merged.CompanyRevenueBand = enrichment.CompanyRevenueBand
	}
	if merged.CompanyRegion == nil {
		merged.CompanyRegion = enrichment.CompanyRegion
	}
	if merged.CompanyTechStack == nil {
		merged.CompanyTechStack = enrichment.CompanyTechStack
	}
	if merged.ContactEmail == nil {
		merged.ContactEmail = enrichment.ContactEmail
	}
	if merged.ContactFirstName == nil {
		merged.ContactFirstName = enrichment.ContactFirstName
	}
	if merged.ContactLastName == nil {
		merged.ContactLastName = enrichment.ContactLastName
	}
	if merged.ContactRoleFunction == nil {
		merged.ContactRoleFunction = enrichment.ContactRoleFunction
	}
	if merged.ContactSeniority == nil {
		merged.ContactSeniority = enrichment.ContactSeniority
	}
	if merged.ContactTitleRaw == nil {
		merged.ContactTitleRaw = enrichment.ContactTitleRaw
	}
	if merged.ContactGeo == nil {
		merged.ContactGeo = enrichment.ContactGeo
	}
	if merged.ContactPhone == nil {
		merged.ContactPhone = enrichment.ContactPhone
	}
	if merged.UseCase == nil {
		merged.UseCase = enrichment.UseCase
	}
	if merged.DealBand == nil {
		merged.DealBand = enrichment.DealBand
	}
	if merged.UrgencyBand == nil {
		merged.UrgencyBand = enrichment.UrgencyBand
	}
	if merged.LeadSource == nil {
		merged.LeadSource = enrichment.LeadSource
	}

	return merged
}
