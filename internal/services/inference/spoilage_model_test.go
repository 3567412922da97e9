package inference

import (
	"context"
	"testing"
	"time"

	"AgriChain/internal/domain/models"
)

func mildForecast() models.WeatherForecast {
	origin := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	return dryForecast(origin, 7)
}

func TestAssessTomatoWithoutStorage(t *testing.T) {
	m := NewSpoilageModel(testLogger(t))

	// Base 35 × no-storage factor 1.3 = 45.5 with no weather or transit
	// penalties (26°C, 50% humidity, 2h transit).
	risk, err := m.Assess(context.Background(), "tomato", models.StorageNone, mildForecast(), 2)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if risk.RiskPct != 46 {
		t.Fatalf("risk = %d, want 46", risk.RiskPct)
	}
	if risk.RiskLevel != models.RiskHigh {
		t.Fatalf("level = %s, want High", risk.RiskLevel)
	}
	if risk.GaugeOffset != 128.93 {
		t.Fatalf("gauge offset = %v, want 128.93", risk.GaugeOffset)
	}
	if len(risk.Factors) != 3 {
		t.Fatalf("expected 3 factors, got %d", len(risk.Factors))
	}
}

func TestAssessColdStorageClampsLow(t *testing.T) {
	m := NewSpoilageModel(testLogger(t))

	// Dry air at wheat's 14% moisture threshold leaves no humidity
	// penalty, so base 10 × cold 0.4 = 4 clamps up to the 5% floor.
	f := mildForecast()
	for i := range f.Days {
		f.Days[i].HumidityPct = 14
	}
	f.Recompute()

	risk, err := m.Assess(context.Background(), "wheat", models.StorageCold, f, 1)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if risk.RiskPct != 5 {
		t.Fatalf("risk = %d, want floor 5", risk.RiskPct)
	}
	if risk.RiskLevel != models.RiskLow {
		t.Fatalf("level = %s, want Low", risk.RiskLevel)
	}
	if risk.Factors[0].Kind != models.FactorGood {
		t.Fatalf("cold storage factor should be good, got %s", risk.Factors[0].Kind)
	}
}

func TestAssessHumidityPenaltyAppliesToGrain(t *testing.T) {
	m := NewSpoilageModel(testLogger(t))

	// Humid air penalises grain too: base 10 × cold 0.4 = 4, plus
	// (50 - 14) × 0.3 = 10.8 for 50% humidity, rounds to 15.
	risk, err := m.Assess(context.Background(), "wheat", models.StorageCold, mildForecast(), 1)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if risk.RiskPct != 15 {
		t.Fatalf("risk = %d, want 15", risk.RiskPct)
	}
	if risk.RiskLevel != models.RiskLow {
		t.Fatalf("level = %s, want Low", risk.RiskLevel)
	}
}

func TestAssessTransitPenaltyOnlyForHighPerishability(t *testing.T) {
	m := NewSpoilageModel(testLogger(t))
	f := mildForecast()

	short, err := m.Assess(context.Background(), "tomato", models.StorageWarehouse, f, 2)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	long, err := m.Assess(context.Background(), "tomato", models.StorageWarehouse, f, 8)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if long.RiskPct-short.RiskPct != 10 {
		t.Fatalf("5 extra transit hours should add 10%%, got %d", long.RiskPct-short.RiskPct)
	}

	grainShort, err := m.Assess(context.Background(), "wheat", models.StorageWarehouse, f, 2)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	grainLong, err := m.Assess(context.Background(), "wheat", models.StorageWarehouse, f, 8)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if grainLong.RiskPct != grainShort.RiskPct {
		t.Fatalf("transit must not affect low-perishability crops")
	}
}

func TestAssessHeatAndRainFactors(t *testing.T) {
	m := NewSpoilageModel(testLogger(t))

	origin := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	f := dryForecast(origin, 7)
	for i := range f.Days {
		f.Days[i].TempMaxC = 38
	}
	f.Days[2].RainfallMM = 9
	f.Recompute()

	risk, err := m.Assess(context.Background(), "tomato", models.StorageNone, f, 2)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	// 45.5 base + heat penalty (38-30)*1.5 = 57.5, rounded 58.
	if risk.RiskPct != 58 {
		t.Fatalf("risk = %d, want 58", risk.RiskPct)
	}
	last := risk.Factors[len(risk.Factors)-1]
	if last.Kind != models.FactorBad {
		t.Fatalf("rain day should yield a bad factor, got %s", last.Kind)
	}
}

func TestRiskLevelBands(t *testing.T) {
	cases := []struct {
		pct  int
		want models.RiskLevel
	}{
		{5, models.RiskLow},
		{19, models.RiskLow},
		{20, models.RiskMedium},
		{44, models.RiskMedium},
		{45, models.RiskHigh},
		{95, models.RiskHigh},
	}
	for _, c := range cases {
		if got := models.RiskLevelFor(c.pct); got != c.want {
			t.Fatalf("RiskLevelFor(%d) = %s, want %s", c.pct, got, c.want)
		}
	}
}
