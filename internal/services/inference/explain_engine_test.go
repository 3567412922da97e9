package inference

import (
	"context"
	"strings"
	"testing"
	"time"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/domain/service"
)

func explainInput() service.ExplainInput {
	origin := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	return service.ExplainInput{
		Crop:     "tomato",
		District: "nashik",
		LandSize: 2,
		Weather:  dryForecast(origin, 7),
		Window: models.HarvestWindow{
			StartDate:         origin,
			EndDate:           origin.AddDate(0, 0, 3),
			DisplayLabel:      "Mar 8–Mar 11",
			DaysFromToday:     "In 0–3 days — act soon!",
			RecommendationSub: "This 4-day window offers the best combination of dry weather, favourable temperatures, and peak mandi demand.",
			Urgency:           models.UrgencyUrgent,
		},
		Markets: []models.MarketOption{{
			Name:             "Nashik APMC",
			IsBest:           true,
			PricePerKg:       28.5,
			PriceDisplay:     "₹28.5",
			TransportDisplay: "₹2.1",
			NetProfit:        422400,
			NetProfitDisplay: "₹4,22,400",
			Trend:            "+3.2% recent trend",
		}},
		Spoilage: models.SpoilageRisk{
			RiskPct:   46,
			RiskLevel: models.RiskHigh,
			Factors: []models.Factor{
				{Kind: models.FactorWarn, Text: "No cold storage: +21% spoilage risk"},
				{Kind: models.FactorGood, Text: "Short transit time keeps spoilage low"},
			},
		},
	}
}

func TestExplainConfidenceWithFullCoverage(t *testing.T) {
	e := NewExplainEngine(testLogger(t))

	// 60 base + 9.8 forecast + 12 profit + 5 district + 8 crop = 94.8,
	// clamped to the 92 ceiling.
	_, _, conf := e.Explain(context.Background(), explainInput())
	if conf.Score != 92 {
		t.Fatalf("score = %d, want 92", conf.Score)
	}
	if conf.Label != "92% confident" {
		t.Fatalf("label = %q", conf.Label)
	}
	if conf.Variance != "±6%" {
		t.Fatalf("variance = %q, want ±6%%", conf.Variance)
	}
}

func TestExplainConfidenceWithoutCoverage(t *testing.T) {
	e := NewExplainEngine(testLogger(t))

	in := explainInput()
	in.Crop = "dragonfruit"
	in.District = "atlantis"
	in.Markets = nil

	// 60 base + 9.8 forecast only = 69.8, truncated to 69.
	_, _, conf := e.Explain(context.Background(), in)
	if conf.Score != 69 {
		t.Fatalf("score = %d, want 69", conf.Score)
	}
	if conf.Variance != "±10%" {
		t.Fatalf("variance = %q, want ±10%%", conf.Variance)
	}
}

func TestExplainConfidenceBounds(t *testing.T) {
	e := NewExplainEngine(testLogger(t))

	in := explainInput()
	in.Weather.Days = in.Weather.Days[:1]
	in.Crop = "dragonfruit"
	in.District = "atlantis"
	in.Markets = nil

	_, _, conf := e.Explain(context.Background(), in)
	if conf.Score < 55 || conf.Score > 92 {
		t.Fatalf("score %d outside [55,92]", conf.Score)
	}
}

func TestExplainReasoningSteps(t *testing.T) {
	e := NewExplainEngine(testLogger(t))

	_, steps, _ := e.Explain(context.Background(), explainInput())
	if len(steps) != 4 {
		t.Fatalf("expected 4 reasoning steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.StepNum == "" || s.Title == "" || s.Desc == "" {
			t.Fatalf("step %d has empty fields: %+v", i, s)
		}
	}
	if steps[0].StepNum != "01" || steps[3].StepNum != "04" {
		t.Fatalf("steps not numbered 01..04")
	}
	if !strings.Contains(steps[1].Desc, "Nashik APMC") {
		t.Fatalf("price step should name the best market: %q", steps[1].Desc)
	}
	if !strings.Contains(steps[2].Desc, "In 0–3 days") {
		t.Fatalf("crop step should carry the window timing: %q", steps[2].Desc)
	}
}

func TestExplainNarrativeReferencesNumbers(t *testing.T) {
	e := NewExplainEngine(testLogger(t))

	expl, _, _ := e.Explain(context.Background(), explainInput())
	if !strings.Contains(expl.WeatherReason, "Nashik") {
		t.Fatalf("weather reason should name the district: %q", expl.WeatherReason)
	}
	if !strings.Contains(expl.PriceReason, "₹4,22,400") {
		t.Fatalf("price reason should carry the net profit: %q", expl.PriceReason)
	}
	if !strings.Contains(expl.SpoilageReason, "46%") {
		t.Fatalf("spoilage reason should carry the risk pct: %q", expl.SpoilageReason)
	}
	if !strings.Contains(expl.SpoilageReason, "; ") {
		t.Fatalf("spoilage reason should join the top two factors: %q", expl.SpoilageReason)
	}
}
