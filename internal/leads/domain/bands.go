package domain

import "strings"

// EmployeeBand is the ordered employee-count bucket for a company.
type EmployeeBand string

const (
	Employees1To10     EmployeeBand = "1-10"
	Employees11To50    EmployeeBand = "11-50"
	Employees51To200   EmployeeBand = "51-200"
	Employees201To1000 EmployeeBand = "201-1000"
	Employees1000Plus  EmployeeBand = "1000+"
)

// RevenueBand is the ordered annual-revenue bucket for a company.
type RevenueBand string

const (
	RevenueUnder1M  RevenueBand = "<1M"
	Revenue1To10M   RevenueBand = "1-10M"
	Revenue10To50M  RevenueBand = "10-50M"
	Revenue50To250M RevenueBand = "50-250M"
	Revenue250MPlus RevenueBand = "250M+"
)

// SeniorityBand is the ordered seniority level of a contact.
type SeniorityBand string

const (
	SeniorityIC       SeniorityBand = "IC"
	SeniorityManager  SeniorityBand = "Manager"
	SeniorityDirector SeniorityBand = "Director"
	SeniorityVP       SeniorityBand = "VP"
	SeniorityCLevel   SeniorityBand = "C-Level"
)

// DealBand is the ordered deal-size bucket.
type DealBand string

const (
	DealSmall      DealBand = "Small"
	DealMid        DealBand = "Mid"
	DealEnterprise DealBand = "Enterprise"
)

// UrgencyBand is the ordered buying-urgency bucket.
type UrgencyBand string

const (
	UrgencyExploring   UrgencyBand = "Exploring"
	UrgencyThisQuarter UrgencyBand = "ThisQuarter"
	UrgencyThisMonth   UrgencyBand = "ThisMonth"
)

// ParseEmployeeBand returns the band for a known value, or nil for anything else.
// Unrecognized values are treated as absent, never as an error.
func ParseEmployeeBand(value string) *EmployeeBand {
	switch EmployeeBand(strings.TrimSpace(value)) {
	case Employees1To10, Employees11To50, Employees51To200, Employees201To1000, Employees1000Plus:
		band := EmployeeBand(strings.TrimSpace(value))
		return &band
	}
	return nil
}

// ParseRevenueBand returns the band for a known value, or nil for anything else.
func ParseRevenueBand(value string) *RevenueBand {
	switch RevenueBand(strings.TrimSpace(value)) {
	case RevenueUnder1M, Revenue1To10M, Revenue10To50M, Revenue50To250M, Revenue250MPlus:
		band := RevenueBand(strings.TrimSpace(value))
		return &band
	}
	return nil
}

// ParseSeniorityBand returns the band for a known value, or nil for anything else.
func ParseSeniorityBand(value string) *SeniorityBand {
	switch SeniorityBand(strings.TrimSpace(value)) {
	case SeniorityIC, SeniorityManager, SeniorityDirector, SeniorityVP, SeniorityCLevel:
		band := SeniorityBand(strings.TrimSpace(value))
		return &band
	}
	return nil
}

// ParseDealBand returns the band for a known value, or nil for anything else.
func ParseDealBand(value string) *DealBand {
	switch DealBand(strings.TrimSpace(value)) {
	case DealSmall, DealMid, DealEnterprise:
		band := DealBand(strings.TrimSpace(value))
		return &band
	}
	return nil
}

// ParseUrgencyBand returns the band for a known value, or nil for anything else.
func ParseUrgencyBand(value string) *UrgencyBand {
	switch UrgencyBand(strings.TrimSpace(value)) {
	case UrgencyExploring, UrgencyThisQuarter, UrgencyThisMonth:
		band := UrgencyBand(strings.TrimSpace(value))
		return &band
	}
	return nil
}

// EmployeeBandFromCount buckets a raw employee count using fixed breakpoints.
// Non-positive counts yield no band.
func EmployeeBandFromCount(count float64) *EmployeeBand {
	if count <= 0 || count != count { // NaN guard
		return nil
	}
	var band EmployeeBand
	switch {
	case count <= 10:
		band = Employees1To10
	case count <= 50:
		band = Employees11To50
	case count <= 200:
		band = Employees51To200
	case count <= 1000:
		band = Employees201To1000
	default:
		band = Employees1000Plus
	}
	return &band
}

// RevenueBandFromAmount buckets a raw annual revenue (in currency units)
// using fixed breakpoints. Non-positive amounts yield no band.
func RevenueBandFromAmount(amount float64) *RevenueBand {
	if amount <= 0 || amount != amount {
		return nil
	}
	var band RevenueBand
	switch {
	case amount < 1_000_000:
		band = RevenueUnder1M
	case amount < 10_000_000:
		band = Revenue1To10M
	case amount < 50_000_000:
		band = Revenue10To50M
	case amount < 250_000_000:
		band = Revenue50To250M
	default:
		band = Revenue250MPlus
	}
	return &band
}

// DealBandFromValue buckets a raw deal value: under 10k Small, under 100k Mid,
// everything above Enterprise.
func DealBandFromValue(value float64) *DealBand {
	if value <= 0 || value != value {
		return nil
	}
	var band DealBand
	switch {
	case value < 10_000:
		band = DealSmall
	case value < 100_000:
		band = DealMid
	default:
		band = DealEnterprise
	}
	return &band
}
