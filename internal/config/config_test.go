package config

import (
	"testing"
)

func TestMergeConfigKeepsDefaultsForUnsetFields(t *testing.T) {
	t.Parallel()

	merged := mergeConfig(defaultConfig(), Config{})

	if merged.Analysis.MinBodyLength != 100 {
		t.Fatalf("expected default minBodyLength 100, got %d", merged.Analysis.MinBodyLength)
	}
	if merged.Analysis.MinYear != 2000 || merged.Analysis.MaxYear != 2025 {
		t.Fatalf("expected default year window 2000-2025, got %d-%d",
			merged.Analysis.MinYear, merged.Analysis.MaxYear)
	}
	if len(merged.Analysis.ExcludedDomains) != 1 {
		t.Fatalf("expected default exclusion list to survive, got %v", merged.Analysis.ExcludedDomains)
	}
}

func TestMergeConfigNegativeOneDisablesBounds(t *testing.T) {
	t.Parallel()

	override := Config{}
	override.Analysis.MinBodyLength = -1
	override.Analysis.MinYear = -1
	override.Analysis.MaxYear = -1

	merged := mergeConfig(defaultConfig(), override)

	if merged.Analysis.MinBodyLength != -1 {
		t.Fatalf("expected minBodyLength -1, got %d", merged.Analysis.MinBodyLength)
	}
	if merged.Analysis.MinYear != -1 || merged.Analysis.MaxYear != -1 {
		t.Fatalf("expected disabled year window, got %d-%d",
			merged.Analysis.MinYear, merged.Analysis.MaxYear)
	}
}

func TestMergeConfigEmptyListClearsExclusions(t *testing.T) {
	t.Parallel()

	override := Config{}
	override.Analysis.ExcludedDomains = []string{}

	merged := mergeConfig(defaultConfig(), override)

	if len(merged.Analysis.ExcludedDomains) != 0 {
		t.Fatalf("expected exclusion list to be cleared, got %v", merged.Analysis.ExcludedDomains)
	}
}

func TestMergeConfigReplacesExclusions(t *testing.T) {
	t.Parallel()

	override := Config{}
	override.Analysis.ExcludedDomains = []string{"example.fr"}

	merged := mergeConfig(defaultConfig(), override)

	if len(merged.Analysis.ExcludedDomains) != 1 || merged.Analysis.ExcludedDomains[0] != "example.fr" {
		t.Fatalf("expected exclusion list replaced, got %v", merged.Analysis.ExcludedDomains)
	}
}
