package inference

import (
	"context"
	"fmt"
	"math"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

// gaugeCircumference is 2π × 38, the SVG risk gauge circle.
const gaugeCircumference = 238.76

// SpoilageModel scores post-harvest spoilage risk with an additive model
// over perishability, storage quality, heat, humidity and transit time.
type SpoilageModel struct {
	log *logger.Logger
}

// NewSpoilageModel creates the spoilage risk component.
func NewSpoilageModel(log *logger.Logger) *SpoilageModel {
	return &SpoilageModel{log: log}
}

// Assess returns the risk percentage in [5,95] with its level, factors and
// gauge geometry.
func (m *SpoilageModel) Assess(_ context.Context, crop string, storage models.StorageType, forecast models.WeatherForecast, transitHours float64) (models.SpoilageRisk, error) {
	profile := knowledge.ProfileFor(crop)
	baseRisk := knowledge.PerishabilityBaseRisk[profile.Perishability]

	storageFactor, ok := knowledge.StorageSpoilageFactor[storage]
	if !ok {
		storageFactor = 1.0
	}

	// Heat above 30°C only stresses perishable produce.
	tempPenalty := 0.0
	if profile.Perishability == models.PerishabilityHigh || profile.Perishability == models.PerishabilityMedium {
		tempPenalty = max(0, forecast.AvgTempC-30) * 1.5
	}

	humPenalty := max(0, forecast.AvgHumidity-profile.HumidityTolerance) * 0.3

	transitPenalty := 0.0
	if profile.Perishability == models.PerishabilityHigh {
		transitPenalty = max(0, (transitHours-3)*2)
	}

	rawRisk := baseRisk*storageFactor + tempPenalty + humPenalty + transitPenalty
	riskPct := util.ClampInt(int(math.Round(rawRisk)), 5, 95)
	level := models.RiskLevelFor(riskPct)

	gaugeOffset := util.Round2(gaugeCircumference * (1 - float64(riskPct)/100))

	factors := make([]models.Factor, 0, 3)
	switch storage {
	case models.StorageNone:
		factors = append(factors, models.Factor{
			Kind: models.FactorWarn,
			Text: fmt.Sprintf("No cold storage: +%d%% spoilage risk", int(baseRisk*(storageFactor-0.7))),
		})
	case models.StorageCold:
		factors = append(factors, models.Factor{
			Kind: models.FactorGood,
			Text: "Cold storage significantly reduces spoilage risk",
		})
	default:
		factors = append(factors, models.Factor{
			Kind: models.FactorWarn,
			Text: fmt.Sprintf("%s storage: moderate risk — ventilate well", util.Title(string(storage))),
		})
	}

	if transitPenalty > 0 {
		factors = append(factors, models.Factor{
			Kind: models.FactorWarn,
			Text: fmt.Sprintf("Transit time %.0f+ hrs in afternoon heat: +%d%% risk", transitHours, int(transitPenalty)),
		})
	} else {
		factors = append(factors, models.Factor{
			Kind: models.FactorGood,
			Text: "Short transit time keeps spoilage low",
		})
	}

	if forecast.RainDays == 0 {
		factors = append(factors, models.Factor{
			Kind: models.FactorGood,
			Text: "Dry harvest conditions reduce fungal risk",
		})
	} else {
		factors = append(factors, models.Factor{
			Kind: models.FactorBad,
			Text: fmt.Sprintf("%d rain days forecast — harvest carefully to avoid moisture damage", forecast.RainDays),
		})
	}

	var description string
	switch level {
	case models.RiskLow:
		description = fmt.Sprintf("Low risk (%d%%) — standard care during transit is sufficient.", riskPct)
	case models.RiskMedium:
		description = fmt.Sprintf("Medium risk (%d%%) — take preservation actions to protect your harvest.", riskPct)
	default:
		description = fmt.Sprintf("High risk (%d%%) — urgent action required before and during transit.", riskPct)
	}

	m.log.Debug("spoilage assessed",
		logger.String("crop", profile.Name),
		logger.String("storage", string(storage)),
		logger.Int("risk_pct", riskPct),
	)

	return models.SpoilageRisk{
		RiskPct:     riskPct,
		RiskLevel:   level,
		Description: description,
		Factors:     factors,
		GaugeOffset: gaugeOffset,
	}, nil
}
