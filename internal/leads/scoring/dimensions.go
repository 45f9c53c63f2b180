package scoring

import "math"

// Dimensions groups related signals into three normalized 0-100 aggregates.
type Dimensions struct {
	Fit    int `json:"fit"`
	Intent int `json:"intent"`
	Timing int `json:"timing"`
}

// Fixed maxima representing the theoretical ceiling of each dimension's
// unweighted signals. Non-zero constants, so normalization never divides
// by zero.
const (
	fitMax    = 95.0
	intentMax = 35.0
	timingMax = 20.0
)

// signalDimensions is the fixed signal-to-dimension mapping.
var signalDimensions = map[string]string{
	SignalEmailDomain:   "fit",
	SignalCompanySize:   "fit",
	SignalRevenue:       "fit",
	SignalSeniority:     "fit",
	SignalIndustry:      "fit",
	SignalRegionPenalty: "fit",
	SignalLeadSource:    "intent",
	SignalUseCase:       "intent",
	SignalDealBand:      "intent",
	SignalUrgency:       "timing",
}

// ComputeDimensions aggregates an enriched-phase breakdown into Fit, Intent,
// and Timing. Each dimension sum is normalized against its fixed maximum and
// clamped to 0-100.
func ComputeDimensions(breakdown map[string]int) Dimensions {
	sums := map[string]int{}
	for key, points := range breakdown {
		if dim, ok := signalDimensions[key]; ok {
			sums[dim] += points
		}
	}

	return Dimensions{
		Fit:    normalizeDimension(sums["fit"], fitMax),
		Intent: normalizeDimension(sums["intent"], intentMax),
		Timing: normalizeDimension(sums["timing"], timingMax),
	}
}

func normalizeDimension(sum int, max float64) int {
	scaled := math.Round(math.Min(100, float64(sum)/max*100))
	value := int(scaled)
	if value < 0 {
		return 0
	}
	return value
}
