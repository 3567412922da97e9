package knowledge

import "testing"

func TestDistancesFor(t *testing.T) {
	nashik := DistancesFor("Nashik")
	if nashik["Nashik"] != 15 || nashik["Mumbai"] != 170 {
		t.Fatalf("nashik distance table drifted: %v", nashik)
	}

	unknown := DistancesFor("atlantis")
	if unknown["Local APMC"] != 20 || len(unknown) != 3 {
		t.Fatalf("unknown district must use the default table, got %v", unknown)
	}
}

func TestMedianDistanceKm(t *testing.T) {
	// Default table sorted: 20, 60, 100.
	if got := MedianDistanceKm("atlantis"); got != 60 {
		t.Fatalf("default median = %v, want 60", got)
	}
}

func TestYieldKgPerAcre(t *testing.T) {
	if got := YieldKgPerAcre("potato"); got != 12000 {
		t.Fatalf("potato yield = %v, want 12000", got)
	}
	if got := YieldKgPerAcre("saffron"); got != defaultYieldKgPerAcre {
		t.Fatalf("unknown crop yield = %v, want default %v", got, defaultYieldKgPerAcre)
	}
}

func TestFallbackMarketsFor(t *testing.T) {
	tomato := FallbackMarketsFor("tomato")
	if len(tomato) != 3 || tomato[0].Market != "Nashik APMC" {
		t.Fatalf("tomato fallback drifted: %v", tomato)
	}
	generic := FallbackMarketsFor("saffron")
	if len(generic) != 3 || generic[0].Market != "Local APMC" {
		t.Fatalf("unknown crop must use generic benchmarks, got %v", generic)
	}
}

func TestSeasonalMultiplier(t *testing.T) {
	if got := SeasonalMultiplier("onion", 7); got != 1.50 {
		t.Fatalf("onion July multiplier = %v, want 1.50", got)
	}
	if got := SeasonalMultiplier("soybean", 7); got != 1.0 {
		t.Fatalf("crop without a table must be identity, got %v", got)
	}
	if got := SeasonalMultiplier("onion", 0); got != 1.0 {
		t.Fatalf("out-of-range month must be identity, got %v", got)
	}
}
