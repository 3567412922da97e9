package inference

import (
	"context"
	"fmt"
	"math"
	"strings"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/domain/service"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

const (
	confidenceFloor = 55
	confidenceCeil  = 92
)

// ExplainEngine turns the numeric pipeline outputs into the narrative
// "why" panel: per-domain explanations, numbered reasoning steps and a
// composite confidence score. Pure formatting, no re-derivation.
type ExplainEngine struct {
	log *logger.Logger
}

// NewExplainEngine creates the explanation component.
func NewExplainEngine(log *logger.Logger) *ExplainEngine {
	return &ExplainEngine{log: log}
}

// Explain builds the full explainability block from upstream outputs.
func (e *ExplainEngine) Explain(_ context.Context, in service.ExplainInput) (models.Explanation, []models.ReasoningStep, models.ConfidenceInfo) {
	var best models.MarketOption
	if len(in.Markets) > 0 {
		best = in.Markets[0]
	}

	explanation := e.buildExplanation(in, best)
	steps := e.buildReasoningSteps(in, best)
	confidence := e.buildConfidence(in)
	return explanation, steps, confidence
}

func (e *ExplainEngine) buildExplanation(in service.ExplainInput, best models.MarketOption) models.Explanation {
	cropTitle := util.Title(in.Crop)
	districtTitle := util.Title(in.District)

	rainSummary := fmt.Sprintf("No rainfall expected for %d more days", len(in.Weather.Days))
	if in.Weather.RainDays > 0 {
		rainSummary = fmt.Sprintf("%d rain day(s) expected — harvest before rain", in.Weather.RainDays)
	}
	humidityNote := "Dry, cool conditions are ideal for harvest and transport."
	if in.Weather.AvgHumidity >= 65 {
		humidityNote = "Higher humidity increases fungal risk — act quickly after harvest."
	}
	weatherReason := fmt.Sprintf(
		"Weather forecast for %s shows %s. Average temperature is %.0f°C with %.0f%% humidity. %s",
		districtTitle, rainSummary, in.Weather.AvgTempC, in.Weather.AvgHumidity, humidityNote,
	)

	priceReason := fmt.Sprintf(
		"Based on mandi price data, %s offers the best net return at %s/kg with transport cost of %s/kg, "+
			"giving a net profit of %s for your farm size. Price trend: %s.",
		best.Name, best.PriceDisplay, best.TransportDisplay, best.NetProfitDisplay, best.Trend,
	)

	maturityNote := "approaching maturity"
	if in.Window.Urgency == models.UrgencyNormal {
		maturityNote = "at peak maturity"
	}
	actionNote := "Plan your harvest crew and transport now."
	if in.Window.Urgency == models.UrgencyUrgent {
		actionNote = "Immediate action recommended to avoid over-ripening."
	}
	cropReason := fmt.Sprintf(
		"For %s, the %s harvest stage means the crop is %s. Harvesting in the %s window maximises "+
			"Brix (sugar-acid balance) and reduces shrinkage. %s",
		cropTitle, strings.ReplaceAll(string(in.Window.Urgency), "_", " "), maturityNote,
		in.Window.DisplayLabel, actionNote,
	)

	factorTexts := make([]string, 0, 2)
	for i, f := range in.Spoilage.Factors {
		if i >= 2 {
			break
		}
		factorTexts = append(factorTexts, f.Text)
	}
	spoilageReason := fmt.Sprintf(
		"Post-harvest spoilage risk is estimated at %d%% (%s). Key factors: %s. "+
			"Following the top preservation action alone can reduce this risk significantly.",
		in.Spoilage.RiskPct, in.Spoilage.RiskLevel, strings.Join(factorTexts, "; "),
	)

	return models.Explanation{
		WeatherReason:  weatherReason,
		PriceReason:    priceReason,
		CropReason:     cropReason,
		SpoilageReason: spoilageReason,
	}
}

func (e *ExplainEngine) buildReasoningSteps(in service.ExplainInput, best models.MarketOption) []models.ReasoningStep {
	windowChoice := "the least rain in the forecast period"
	if in.Weather.RainDays == 0 {
		windowChoice = "no rain and favourable temperatures"
	}

	spoilageAdvice := "Simple ventilated crates are sufficient for your risk level."
	if in.Spoilage.RiskPct > 40 {
		spoilageAdvice = "Cold storage is strongly recommended for best results."
	}

	timing := strings.TrimSpace(strings.SplitN(in.Window.DaysFromToday, "—", 2)[0])

	return []models.ReasoningStep{
		{
			StepNum: "01",
			Title:   "Weather Analysis",
			Desc: fmt.Sprintf(
				"Forecast for %s shows %d rain day(s) over %d days. Average high: %.0f°C, humidity: %.0f%%. "+
					"The dry window of %s was selected because it has %s.",
				util.Title(in.District), in.Weather.RainDays, len(in.Weather.Days),
				in.Weather.AvgTempC, in.Weather.AvgHumidity, in.Window.DisplayLabel, windowChoice,
			),
		},
		{
			StepNum: "02",
			Title:   "Price Pattern (Mandi Data)",
			Desc: fmt.Sprintf(
				"%s gives the best net return of %s on your %g acres. Even though some markets show higher "+
					"base prices, transport costs erode the advantage. Trend: %s. Sell within 2–3 days of harvest "+
					"for best price.",
				best.Name, best.NetProfitDisplay, in.LandSize, best.Trend,
			),
		},
		{
			StepNum: "03",
			Title:   "Soil & Crop Health",
			Desc: fmt.Sprintf(
				"%s at this growth stage needs %s to reach peak quality. %s",
				util.Title(in.Crop), timing, in.Window.RecommendationSub,
			),
		},
		{
			StepNum: "04",
			Title:   "Spoilage Logic",
			Desc: fmt.Sprintf(
				"Without intervention, estimated %d%% of produce may be lost to spoilage during transit and "+
					"storage. The top preservation action (free: early morning harvest) alone can cut this by "+
					"~8 percentage points. %s",
				in.Spoilage.RiskPct, spoilageAdvice,
			),
		},
	}
}

// buildConfidence composes the score from forecast depth, price data
// quality and crop/district dataset coverage. Always within [55,92].
func (e *ExplainEngine) buildConfidence(in service.ExplainInput) models.ConfidenceInfo {
	score := 60.0

	score += math.Min(10, float64(len(in.Weather.Days))*1.4)

	if len(in.Markets) > 0 && in.Markets[0].NetProfit > 0 {
		score += 12
	}
	if knowledge.KnownDistrict(in.District) {
		score += 5
	}
	if knowledge.KnownCrop(in.Crop) {
		score += 8
	}

	final := util.ClampInt(int(score), confidenceFloor, confidenceCeil)

	variancePct := int(math.Round(math.Max(5, 20-float64(final)*0.15)))

	return models.ConfidenceInfo{
		Score: final,
		Label: fmt.Sprintf("%d%% confident", final),
		Basis: fmt.Sprintf(
			"Based on %d-day weather forecast, mandi price records, and historical yield patterns for %s "+
				"in similar districts.",
			len(in.Weather.Days), util.Title(in.Crop),
		),
		Variance: fmt.Sprintf("±%d%%", variancePct),
	}
}
