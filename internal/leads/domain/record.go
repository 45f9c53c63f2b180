// Package domain defines the canonical lead model shared by mapping,
// enrichment, and scoring. A Record is an immutable value object: every
// pipeline step that changes one builds a fresh copy.
package domain

// Record is the canonical lead schema, independent of the source CRM.
// CompanyDomain is the only required field; every other field is optional
// and absence (nil) is distinct from an empty string.
type Record struct {
	CompanyDomain       string         `json:"company_domain"`
	CompanyName         *string        `json:"company_name,omitempty"`
	CompanyIndustry     *string        `json:"company_industry,omitempty"`
	CompanyEmployeeBand *EmployeeBand  `json:"company_employee_band,omitempty"`
	CompanyRevenueBand  *RevenueBand   `json:"company_revenue_band,omitempty"`
	CompanyRegion       *string        `json:"company_region,omitempty"`
	CompanyTechStack    *string        `json:"company_tech_stack,omitempty"`

	ContactEmail        *string        `json:"contact_email,omitempty"`
	ContactFirstName    *string        `json:"contact_first_name,omitempty"`
	ContactLastName     *string        `json:"contact_last_name,omitempty"`
	ContactRoleFunction *string        `json:"contact_role_function,omitempty"`
	ContactSeniority    *SeniorityBand `json:"contact_seniority,omitempty"`
	ContactTitleRaw     *string        `json:"contact_title_raw,omitempty"`
	ContactGeo          *string        `json:"contact_geo,omitempty"`
	ContactPhone        *string        `json:"contact_phone,omitempty"`

	UseCase     *string      `json:"use_case,omitempty"`
	DealBand    *DealBand    `json:"deal_band,omitempty"`
	UrgencyBand *UrgencyBand `json:"urgency_band,omitempty"`
	LeadSource  *string      `json:"lead_source,omitempty"`
}

// StringPtr returns a pointer to the given string, or nil when it is empty.
// Mappers use it to keep "absent" distinct from "empty".
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
