package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"AgriChain/internal/domain/models"
	domrepo "AgriChain/internal/domain/repository"
	"AgriChain/internal/domain/service"
	"AgriChain/pkg/cache"
	applogger "AgriChain/pkg/logger"
)

var dataSources = []string{
	"IMD Weather Forecast (7-day mock / OpenWeatherMap)",
	"AGMARKNET Commodity Price Data (commodity_price.csv)",
	"Custom Crops Yield Historical Dataset (crop_yield.csv)",
	"AgriChain Rule-Based ML Models v1.0",
}

// AdvisorUseCase runs the full inference pipeline: weather, harvest
// window, market ranking, spoilage, preservation, explanation. Stages
// run sequentially because each one feeds the next.
type AdvisorUseCase struct {
	weather      service.WeatherProvider
	harvest      service.HarvestPredictor
	markets      service.MarketRanker
	prices       service.PriceForecaster
	spoilage     service.SpoilageModel
	preservation service.PreservationRanker
	explainer    service.Explainer

	publisher domrepo.Publisher
	metrics   domrepo.Metrics
	cache     cache.Service
	l         *applogger.Logger

	transitSpeedKmh float64
	cacheTTL        time.Duration
	now             func() time.Time
}

// AdvisorDeps carries the pipeline stages and infrastructure for the
// advisor. Cache may be nil to disable response caching.
type AdvisorDeps struct {
	Weather      service.WeatherProvider
	Harvest      service.HarvestPredictor
	Markets      service.MarketRanker
	Prices       service.PriceForecaster
	Spoilage     service.SpoilageModel
	Preservation service.PreservationRanker
	Explainer    service.Explainer
	Publisher    domrepo.Publisher
	Metrics      domrepo.Metrics
	Cache        cache.Service
	Logger       *applogger.Logger

	TransitSpeedKmh float64
	CacheTTL        time.Duration
}

func NewAdvisorUseCase(d AdvisorDeps) *AdvisorUseCase {
	if d.TransitSpeedKmh <= 0 {
		d.TransitSpeedKmh = 40
	}
	if d.CacheTTL <= 0 {
		d.CacheTTL = 15 * time.Minute
	}
	return &AdvisorUseCase{
		weather:         d.Weather,
		harvest:         d.Harvest,
		markets:         d.Markets,
		prices:          d.Prices,
		spoilage:        d.Spoilage,
		preservation:    d.Preservation,
		explainer:       d.Explainer,
		publisher:       d.Publisher,
		metrics:         d.Metrics,
		cache:           d.Cache,
		l:               d.Logger,
		transitSpeedKmh: d.TransitSpeedKmh,
		cacheTTL:        d.CacheTTL,
		now:             time.Now,
	}
}

// Advise produces a full advisory for one farm request.
func (uc *AdvisorUseCase) Advise(ctx context.Context, req *models.AdviseRequest) (*models.Advisory, error) {
	req.Normalize()

	uc.l.Info("advise request",
		applogger.String("crop", req.Crop),
		applogger.String("state", req.State),
		applogger.String("district", req.District),
		applogger.String("stage", req.Stage),
		applogger.String("storage", req.Storage),
		applogger.Float64("land_size", req.LandSize),
	)

	key := uc.cacheKey(req)
	if uc.cache != nil {
		var cached models.Advisory
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			uc.l.Debug("advisory cache hit", applogger.String("key", key))
			return &cached, nil
		}
	}

	weather, err := uc.stage1Weather(ctx, req)
	if err != nil {
		uc.metrics.RecordError("weather")
		return nil, err
	}

	window, err := uc.stage2Harvest(ctx, req, weather)
	if err != nil {
		uc.metrics.RecordError("harvest")
		return nil, err
	}

	markets, err := uc.stage3Markets(ctx, req)
	if err != nil {
		uc.metrics.RecordError("market")
		return nil, err
	}
	if len(markets) == 0 {
		uc.metrics.RecordError("no_market_data")
		return nil, models.ErrNoMarketData
	}
	best := markets[0]

	transitHours := best.DistanceKm / uc.transitSpeedKmh
	spoilage, err := uc.stage4Spoilage(ctx, req, weather, transitHours)
	if err != nil {
		uc.metrics.RecordError("spoilage")
		return nil, err
	}

	actions, err := uc.stage5Preservation(ctx, req, spoilage.RiskPct)
	if err != nil {
		uc.metrics.RecordError("preservation")
		return nil, err
	}

	explanation, steps, confidence := uc.stage6Explain(ctx, req, weather, window, markets, spoilage, actions)

	advisory := &models.Advisory{
		AdvisoryID: uuid.NewString(),

		HarvestDateVal:  window.DisplayLabel,
		HarvestDaysVal:  window.DaysFromToday,
		SpoilageVal:     fmt.Sprintf("%d%%", spoilage.RiskPct),
		SpoilageDescVal: spoilage.Description,
		ProfitVal:       best.NetProfitDisplay,
		ProfitDescVal:   fmt.Sprintf("Best market: %s", best.Name),

		Weather:             weather,
		HarvestWindow:       window,
		Markets:             markets,
		SpoilageRisk:        spoilage,
		PreservationActions: actions,

		Explanation:    explanation,
		ReasoningSteps: steps,
		Confidence:     confidence,

		DataSources: dataSources,
		GeneratedAt: uc.now().UTC(),
	}

	uc.metrics.RecordAdvisory(req.Crop, req.State)
	uc.metrics.RecordConfidence(req.Crop, float64(confidence.Score))

	if uc.publisher != nil {
		if err := uc.publisher.PublishAdvisory(ctx, advisory); err != nil {
			// Downstream fan-out is best effort; the farmer still gets
			// the advisory.
			uc.l.Warn("advisory publish failed",
				applogger.String("advisory_id", advisory.AdvisoryID),
				applogger.Error(err),
			)
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, advisory, uc.cacheTTL); err != nil {
			uc.l.Warn("advisory cache set failed", applogger.String("key", key), applogger.Error(err))
		}
	}

	return advisory, nil
}

// PriceForecastResult is the seasonal price projection for one crop.
type PriceForecastResult struct {
	Crop          string  `json:"crop"`
	CurrentPrice  float64 `json:"current_price"`
	HarvestDays   int     `json:"harvest_days"`
	ForecastPrice float64 `json:"forecast_price"`
	ChangePct     float64 `json:"change_pct"`
	ForecastMonth string  `json:"forecast_month"`
}

// PriceForecast projects a per-kg price to the expected harvest month
// using the crop's seasonal demand pattern.
func (uc *AdvisorUseCase) PriceForecast(_ context.Context, req *models.PriceForecastRequest) *PriceForecastResult {
	crop := req.Crop
	from := uc.now().UTC()
	forecast := uc.prices.ForecastPrice(crop, req.CurrentPrice, req.HarvestDays, from)

	changePct := 0.0
	if req.CurrentPrice > 0 {
		changePct = (forecast - req.CurrentPrice) / req.CurrentPrice * 100
	}
	return &PriceForecastResult{
		Crop:          crop,
		CurrentPrice:  req.CurrentPrice,
		HarvestDays:   req.HarvestDays,
		ForecastPrice: forecast,
		ChangePct:     changePct,
		ForecastMonth: from.AddDate(0, 0, req.HarvestDays).Format("January"),
	}
}

func (uc *AdvisorUseCase) cacheKey(req *models.AdviseRequest) string {
	// Forecasts are pinned to the calendar date, so advisories are too.
	return fmt.Sprintf("advisory:%s:%s:%s:%s:%s:%g:%d:%s",
		req.Crop, req.State, req.District, req.Stage, req.Storage,
		req.LandSize, req.HorizonDays, uc.now().UTC().Format("2006-01-02"))
}

func (uc *AdvisorUseCase) stage1Weather(ctx context.Context, req *models.AdviseRequest) (models.WeatherForecast, error) {
	defer uc.observe("weather")()
	return uc.weather.Forecast(ctx, req.District, req.HorizonDays)
}

func (uc *AdvisorUseCase) stage2Harvest(ctx context.Context, req *models.AdviseRequest, w models.WeatherForecast) (models.HarvestWindow, error) {
	defer uc.observe("harvest")()
	return uc.harvest.Predict(ctx, req.Crop, req.HarvestStage(), w, req.District)
}

func (uc *AdvisorUseCase) stage3Markets(ctx context.Context, req *models.AdviseRequest) ([]models.MarketOption, error) {
	defer uc.observe("market")()
	return uc.markets.Rank(ctx, req.Crop, req.State, req.District, req.LandSize)
}

func (uc *AdvisorUseCase) stage4Spoilage(ctx context.Context, req *models.AdviseRequest, w models.WeatherForecast, transitHours float64) (models.SpoilageRisk, error) {
	defer uc.observe("spoilage")()
	return uc.spoilage.Assess(ctx, req.Crop, req.StorageType(), w, transitHours)
}

func (uc *AdvisorUseCase) stage5Preservation(ctx context.Context, req *models.AdviseRequest, riskPct int) ([]models.PreservationAction, error) {
	defer uc.observe("preservation")()
	return uc.preservation.Rank(ctx, req.Crop, req.StorageType(), riskPct)
}

func (uc *AdvisorUseCase) stage6Explain(ctx context.Context, req *models.AdviseRequest, w models.WeatherForecast, window models.HarvestWindow, markets []models.MarketOption, spoilage models.SpoilageRisk, actions []models.PreservationAction) (models.Explanation, []models.ReasoningStep, models.ConfidenceInfo) {
	defer uc.observe("explain")()
	return uc.explainer.Explain(ctx, service.ExplainInput{
		Crop:       req.Crop,
		District:   req.District,
		LandSize:   req.LandSize,
		Weather:    w,
		Window:     window,
		Markets:    markets,
		Spoilage:   spoilage,
		TopActions: actions,
	})
}

func (uc *AdvisorUseCase) observe(stage string) func() {
	start := time.Now()
	return func() {
		uc.metrics.RecordStageLatency(stage, time.Since(start).Seconds())
	}
}
