package service

import (
	"context"
	"time"

	"AgriChain/internal/domain/models"
)

// WeatherProvider supplies a multi-day forecast for a location. Must be
// deterministic for a given (location, calendar date) pair so that repeated
// calls within one day yield identical forecasts.
type WeatherProvider interface {
	Forecast(ctx context.Context, location string, horizonDays int) (models.WeatherForecast, error)
}

// HarvestPredictor searches the forecast for the best contiguous harvest
// window given the crop's maturity stage.
type HarvestPredictor interface {
	Predict(ctx context.Context, crop string, stage models.HarvestStage, forecast models.WeatherForecast, district string) (models.HarvestWindow, error)
}

// MarketRanker ranks sell destinations by net profit for the given farm.
type MarketRanker interface {
	Rank(ctx context.Context, crop, state, district string, landSize float64) ([]models.MarketOption, error)
}

// PriceForecaster estimates a future price from seasonal patterns.
// Optional helper, not on the main advisory path.
type PriceForecaster interface {
	ForecastPrice(crop string, currentPrice float64, harvestDays int, from time.Time) float64
}

// SpoilageModel scores post-harvest spoilage risk.
type SpoilageModel interface {
	Assess(ctx context.Context, crop string, storage models.StorageType, forecast models.WeatherForecast, transitHours float64) (models.SpoilageRisk, error)
}

// PreservationRanker selects mitigation actions by cost-effectiveness.
type PreservationRanker interface {
	Rank(ctx context.Context, crop string, storage models.StorageType, spoilageRiskPct int) ([]models.PreservationAction, error)
}

// Explainer synthesizes narrative text and the composite confidence score
// from the other components' outputs. Pure formatting downstream of the
// numeric pipeline.
type Explainer interface {
	Explain(ctx context.Context, in ExplainInput) (models.Explanation, []models.ReasoningStep, models.ConfidenceInfo)
}

// ExplainInput bundles the upstream outputs the explainer formats.
type ExplainInput struct {
	Crop       string
	District   string
	LandSize   float64
	Weather    models.WeatherForecast
	Window     models.HarvestWindow
	Markets    []models.MarketOption
	Spoilage   models.SpoilageRisk
	TopActions []models.PreservationAction
}
