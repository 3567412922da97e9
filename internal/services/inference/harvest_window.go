package inference

import (
	"context"
	"fmt"
	"time"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

// HarvestPredictor searches the forecast for the lowest-penalty contiguous
// harvest window around the crop's expected maturity date.
type HarvestPredictor struct {
	log *logger.Logger
}

// NewHarvestPredictor creates the harvest window component.
func NewHarvestPredictor(log *logger.Logger) *HarvestPredictor {
	return &HarvestPredictor{log: log}
}

const defaultMaturityDays = 7

// Predict scores candidate windows near the maturity date and returns the
// best one. Offsets are counted from the first forecast day, so the result
// is a pure function of (crop, stage, forecast).
func (p *HarvestPredictor) Predict(_ context.Context, crop string, stage models.HarvestStage, forecast models.WeatherForecast, district string) (models.HarvestWindow, error) {
	if len(forecast.Days) == 0 {
		return models.HarvestWindow{}, fmt.Errorf("%w: empty forecast", models.ErrDataUnavailable)
	}

	profile := knowledge.ProfileFor(crop)
	daysLeft, ok := profile.MaturityDays[stage]
	if !ok {
		daysLeft = defaultMaturityDays
	}

	origin := forecast.Origin()
	horizon := len(forecast.Days)
	windowLen := profile.HarvestWindowDays

	// Score every candidate start offset around maturity; higher is better,
	// ties go to the earliest start.
	bestOffset := max(0, daysLeft)
	bestScore := -999.0
	lastOffset := min(daysLeft+5, horizon-1)

	for offset := max(0, daysLeft-2); offset <= lastOffset; offset++ {
		window := forecast.Days[offset:min(offset+windowLen, horizon)]
		if len(window) == 0 {
			continue
		}

		var rainSum, tempExcess, humExcess float64
		for _, d := range window {
			rainSum += d.RainfallMM
			tempExcess += max(0, d.TempMaxC-profile.IdealTempMaxC)
			humExcess += max(0, d.HumidityPct-profile.HumidityTolerance)
		}
		score := 100 - rainSum*2 - tempExcess*3 - humExcess*0.5

		if score > bestScore {
			bestScore = score
			bestOffset = offset
		}
	}

	start := origin.AddDate(0, 0, bestOffset)
	end := start.AddDate(0, 0, windowLen-1)
	daysToStart := bestOffset
	daysToEnd := bestOffset + windowLen - 1

	urgency := models.UrgencyPlanAhead
	switch {
	case daysToStart <= 3:
		urgency = models.UrgencyUrgent
	case daysToStart <= 10:
		urgency = models.UrgencyNormal
	}

	displayLabel := util.FormatDateRange(start, end)

	var daysDisplay string
	switch urgency {
	case models.UrgencyUrgent:
		daysDisplay = fmt.Sprintf("In %d–%d days — act soon!", daysToStart, daysToEnd)
	case models.UrgencyNormal:
		daysDisplay = fmt.Sprintf("In %d–%d days — optimal window", daysToStart, daysToEnd)
	default:
		daysDisplay = fmt.Sprintf("In %d–%d days — plan ahead", daysToStart, daysToEnd)
	}

	factors := p.buildFactors(profile, forecast, displayLabel, daysToStart, daysToEnd, end)

	recommendationSub := fmt.Sprintf(
		"This %d-day window offers the best combination of dry weather, favourable temperatures, and peak mandi demand. ",
		windowLen,
	)
	delayDate := end.AddDate(0, 0, profile.DelayPenaltyDays)
	if urgency != models.UrgencyPlanAhead {
		recommendationSub += "Waiting beyond " + util.FormatDayMonth(delayDate) + " risks quality loss and price drop."
	} else {
		recommendationSub += "Mark your calendar and prepare equipment."
	}

	p.log.Debug("harvest window predicted",
		logger.String("crop", profile.Name),
		logger.String("district", district),
		logger.Int("start_offset", bestOffset),
		logger.Float64("score", bestScore),
	)

	return models.HarvestWindow{
		StartDate:         start,
		EndDate:           end,
		DisplayLabel:      displayLabel,
		DaysFromToday:     daysDisplay,
		Recommendation:    "Harvest between " + displayLabel,
		RecommendationSub: recommendationSub,
		Urgency:           urgency,
		Factors:           factors,
	}, nil
}

// buildFactors explains the chosen window. When the window lies beyond the
// forecast horizon the forecast-wide aggregates stand in for window stats.
func (p *HarvestPredictor) buildFactors(profile knowledge.CropProfile, forecast models.WeatherForecast, displayLabel string, daysToStart, daysToEnd int, end time.Time) []models.Factor {
	horizon := len(forecast.Days)
	lo := min(max(0, daysToStart), horizon)
	hi := min(daysToEnd+1, horizon)

	rainDays := forecast.RainDays
	avgMax := forecast.AvgTempC
	if lo < hi {
		window := forecast.Days[lo:hi]
		rainDays = 0
		var sum float64
		for _, d := range window {
			if d.RainfallMM > 0 {
				rainDays++
			}
			sum += d.TempMaxC
		}
		avgMax = sum / float64(len(window))
	}

	factors := make([]models.Factor, 0, 4)
	if rainDays == 0 {
		factors = append(factors, models.Factor{Kind: models.FactorGood, Text: fmt.Sprintf("No rainfall forecast for %s", displayLabel)})
	} else {
		factors = append(factors, models.Factor{Kind: models.FactorWarn, Text: fmt.Sprintf("%d rain day(s) expected — monitor closely", rainDays)})
	}

	if avgMax <= profile.IdealTempMaxC {
		factors = append(factors, models.Factor{Kind: models.FactorGood, Text: fmt.Sprintf("Avg max temp %.0f°C — within ideal range", avgMax)})
	} else {
		factors = append(factors, models.Factor{Kind: models.FactorWarn, Text: fmt.Sprintf("High temps %.0f°C — harvest early in the day", avgMax)})
	}

	if forecast.AvgHumidity <= profile.HumidityTolerance {
		factors = append(factors, models.Factor{Kind: models.FactorGood, Text: fmt.Sprintf("Humidity at %.0f%% — favourable for harvest", forecast.AvgHumidity)})
	} else {
		factors = append(factors, models.Factor{Kind: models.FactorWarn, Text: fmt.Sprintf("High humidity %.0f%% — increases fungal risk", forecast.AvgHumidity)})
	}

	delayDate := end.AddDate(0, 0, profile.DelayPenaltyDays)
	factors = append(factors, models.Factor{
		Kind: models.FactorBad,
		Text: fmt.Sprintf("Delaying past %s risks 15–20%% yield quality loss", util.FormatDayMonth(delayDate)),
	})
	return factors
}
