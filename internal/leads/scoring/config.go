package scoring

// scoreVersion tracks the scoring model for debugging and analysis.
// Bump this when changing scoring logic significantly.
const scoreVersion = "2026-v1"

// Default tier thresholds, used when a tenant has no explicit config.
const (
	defaultHotThreshold  = 70
	defaultWarmThreshold = 40
)

// Config is the per-tenant scoring configuration. It is threaded by value
// into every scoring call so a run is reproducible from the exact config the
// audit record snapshotted; no process-wide config exists.
//
// WarmThreshold <= HotThreshold is a caller convention, not enforced here.
type Config struct {
	ScoringVersion     string             `json:"scoring_version"`
	WeightOverrides    map[string]float64 `json:"weight_overrides,omitempty"`
	PriorityIndustries []string           `json:"priority_industries,omitempty"`
	PriorityUseCases   []string           `json:"priority_use_cases,omitempty"`
	ExcludedRegions    []string           `json:"excluded_regions,omitempty"`
	HotThreshold       int                `json:"hot_threshold"`
	WarmThreshold      int                `json:"warm_threshold"`
}

// DefaultConfig returns the documented defaults: hot 70, warm 40, no
// overrides, no priority or exclusion lists.
func DefaultConfig() Config {
	return Config{
		ScoringVersion: scoreVersion,
		HotThreshold:   defaultHotThreshold,
		WarmThreshold:  defaultWarmThreshold,
	}
}

// Normalize fills zero-value fields with the documented defaults so partially
// stored configs behave the same as absent ones. A stored threshold of 0 is
// indistinguishable from an absent one after JSON decoding and is coerced to
// the default; "every lead is at least Warm" is expressed with a threshold of
// 1, not 0.
func (c Config) Normalize() Config {
	if c.ScoringVersion == "" {
		c.ScoringVersion = scoreVersion
	}
	if c.HotThreshold == 0 {
		c.HotThreshold = defaultHotThreshold
	}
	if c.WarmThreshold == 0 {
		c.WarmThreshold = defaultWarmThreshold
	}
	return c
}

// weight returns the multiplier for a signal key, default 1.0.
func (c Config) weight(key string) float64 {
	if w, ok := c.WeightOverrides[key]; ok {
		return w
	}
	return 1.0
}
