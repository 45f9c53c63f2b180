package scoring

import "testing"

func TestNormalize_FillsDocumentedDefaults(t *testing.T) {
	cfg := Config{}.Normalize()

	if cfg.HotThreshold != 70 {
		t.Fatalf("expected default hot threshold 70, got %d", cfg.HotThreshold)
	}
	if cfg.WarmThreshold != 40 {
		t.Fatalf("expected default warm threshold 40, got %d", cfg.WarmThreshold)
	}
	if cfg.ScoringVersion == "" {
		t.Fatal("expected a default scoring version")
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		ScoringVersion: "custom-v9",
		HotThreshold:   80,
		WarmThreshold:  55,
	}.Normalize()

	if cfg.HotThreshold != 80 || cfg.WarmThreshold != 55 {
		t.Fatalf("expected explicit thresholds kept, got %d/%d", cfg.HotThreshold, cfg.WarmThreshold)
	}
	if cfg.ScoringVersion != "custom-v9" {
		t.Fatalf("expected explicit version kept, got %s", cfg.ScoringVersion)
	}
}

func TestNormalize_ZeroThresholdReadsAsAbsent(t *testing.T) {
	cfg := Config{HotThreshold: 85, WarmThreshold: 0}.Normalize()

	if cfg.WarmThreshold != 40 {
		t.Fatalf("expected zero warm threshold coerced to 40, got %d", cfg.WarmThreshold)
	}
	if cfg.HotThreshold != 85 {
		t.Fatalf("expected explicit hot threshold kept, got %d", cfg.HotThreshold)
	}

	// The always-warm intent is expressed with 1, which survives untouched.
	cfg = Config{WarmThreshold: 1}.Normalize()
	if cfg.WarmThreshold != 1 {
		t.Fatalf("expected warm threshold 1 kept, got %d", cfg.WarmThreshold)
	}
}

func TestWeight_DefaultsToOne(t *testing.T) {
	cfg := Config{WeightOverrides: map[string]float64{SignalRevenue: 2.0}}

	if w := cfg.weight(SignalRevenue); w != 2.0 {
		t.Fatalf("expected override 2.0, got %v", w)
	}
	if w := cfg.weight(SignalUrgency); w != 1.0 {
		t.Fatalf("expected default weight 1.0, got %v", w)
	}
}
