package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/domain/service"
	"AgriChain/pkg/cache"
	applogger "AgriChain/pkg/logger"
)

type fakeWeather struct {
	forecast models.WeatherForecast
	err      error
	calls    int
}

func (f *fakeWeather) Forecast(_ context.Context, _ string, _ int) (models.WeatherForecast, error) {
	f.calls++
	return f.forecast, f.err
}

type fakeHarvest struct{ window models.HarvestWindow }

func (f *fakeHarvest) Predict(_ context.Context, _ string, _ models.HarvestStage, _ models.WeatherForecast, _ string) (models.HarvestWindow, error) {
	return f.window, nil
}

type fakeMarkets struct {
	options []models.MarketOption
	err     error
}

func (f *fakeMarkets) Rank(_ context.Context, _, _, _ string, _ float64) ([]models.MarketOption, error) {
	return f.options, f.err
}

type fakePrices struct{}

func (fakePrices) ForecastPrice(_ string, currentPrice float64, _ int, _ time.Time) float64 {
	return currentPrice * 1.2
}

type fakeSpoilage struct {
	risk    models.SpoilageRisk
	transit float64
}

func (f *fakeSpoilage) Assess(_ context.Context, _ string, _ models.StorageType, _ models.WeatherForecast, transitHours float64) (models.SpoilageRisk, error) {
	f.transit = transitHours
	return f.risk, nil
}

type fakePreservation struct{ actions []models.PreservationAction }

func (f *fakePreservation) Rank(_ context.Context, _ string, _ models.StorageType, _ int) ([]models.PreservationAction, error) {
	return f.actions, nil
}

type fakeExplainer struct{}

func (fakeExplainer) Explain(_ context.Context, _ service.ExplainInput) (models.Explanation, []models.ReasoningStep, models.ConfidenceInfo) {
	return models.Explanation{WeatherReason: "dry week ahead"},
		[]models.ReasoningStep{{StepNum: "01", Title: "Weather Analysis", Desc: "dry"}},
		models.ConfidenceInfo{Score: 85, Label: "85% confident", Variance: "±7%"}
}

type fakePublisher struct {
	published []*models.Advisory
	err       error
}

func (f *fakePublisher) PublishAdvisory(_ context.Context, a *models.Advisory) error {
	f.published = append(f.published, a)
	return f.err
}
func (f *fakePublisher) Close() error { return nil }

type fakeMetrics struct {
	mu         sync.Mutex
	advisories int
	errs       []string
	stages     []string
	confidence float64
}

func (m *fakeMetrics) RecordAdvisory(_, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisories++
}

func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, kind)
}

func (m *fakeMetrics) RecordStageLatency(stage string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, stage)
}

func (m *fakeMetrics) RecordConfidence(_ string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confidence = score
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func testForecast() models.WeatherForecast {
	origin := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	f := models.WeatherForecast{Location: "Nashik"}
	for i := 0; i < 7; i++ {
		f.Days = append(f.Days, models.WeatherDay{
			Date: origin.AddDate(0, 0, i), TempMaxC: 26, TempMinC: 16,
			HumidityPct: 50, Condition: models.ConditionSunny,
		})
	}
	f.Recompute()
	return f
}

func testDeps(t *testing.T) (AdvisorDeps, *fakeWeather, *fakeSpoilage, *fakePublisher, *fakeMetrics) {
	t.Helper()
	weather := &fakeWeather{forecast: testForecast()}
	spoilage := &fakeSpoilage{risk: models.SpoilageRisk{RiskPct: 46, RiskLevel: models.RiskHigh, Description: "Act fast — use preservation methods"}}
	publisher := &fakePublisher{}
	metrics := &fakeMetrics{}
	deps := AdvisorDeps{
		Weather: weather,
		Harvest: &fakeHarvest{window: models.HarvestWindow{
			DisplayLabel:  "Mar 8–Mar 11",
			DaysFromToday: "In 0–3 days — act soon!",
			Urgency:       models.UrgencyUrgent,
		}},
		Markets: &fakeMarkets{options: []models.MarketOption{
			{Name: "Nashik APMC", IsBest: true, NetProfit: 422400, NetProfitDisplay: "₹4,22,400", DistanceKm: 80},
			{Name: "Pune Market Yard", NetProfit: 310000, NetProfitDisplay: "₹3,10,000", DistanceKm: 210},
		}},
		Prices:          fakePrices{},
		Spoilage:        spoilage,
		Preservation:    &fakePreservation{actions: []models.PreservationAction{{Rank: 1, Title: "Harvest in early morning"}}},
		Explainer:       fakeExplainer{},
		Publisher:       publisher,
		Metrics:         metrics,
		Logger:          testLogger(t),
		TransitSpeedKmh: 40,
	}
	return deps, weather, spoilage, publisher, metrics
}

func adviseRequest() *models.AdviseRequest {
	return &models.AdviseRequest{
		Crop: "Tomato", State: "Maharashtra", District: "Nashik",
		Stage: "ready", Storage: "none", LandSize: 2, HorizonDays: 7,
	}
}

func TestAdviseAssemblesAdvisory(t *testing.T) {
	deps, _, spoilage, publisher, metrics := testDeps(t)
	uc := NewAdvisorUseCase(deps)

	a, err := uc.Advise(context.Background(), adviseRequest())
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if a.AdvisoryID == "" {
		t.Fatalf("advisory id missing")
	}
	if a.HarvestDateVal != "Mar 8–Mar 11" {
		t.Fatalf("harvest kpi = %q", a.HarvestDateVal)
	}
	if a.SpoilageVal != "46%" {
		t.Fatalf("spoilage kpi = %q", a.SpoilageVal)
	}
	if a.ProfitVal != "₹4,22,400" || a.ProfitDescVal != "Best market: Nashik APMC" {
		t.Fatalf("profit kpis = %q / %q", a.ProfitVal, a.ProfitDescVal)
	}
	if len(a.DataSources) == 0 {
		t.Fatalf("data sources missing")
	}
	if a.GeneratedAt.IsZero() {
		t.Fatalf("generated_at missing")
	}

	// Transit hours derive from the best market's distance.
	if spoilage.transit != 2 {
		t.Fatalf("transit hours = %v, want 2 (80 km at 40 km/h)", spoilage.transit)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published advisory, got %d", len(publisher.published))
	}
	if metrics.advisories != 1 || metrics.confidence != 85 {
		t.Fatalf("metrics not recorded: %+v", metrics)
	}
	if len(metrics.stages) != 6 {
		t.Fatalf("expected 6 stage latencies, got %v", metrics.stages)
	}
}

func TestAdviseNormalizesRequest(t *testing.T) {
	deps, _, _, _, _ := testDeps(t)
	uc := NewAdvisorUseCase(deps)

	req := adviseRequest()
	req.Crop = "  TOMATO  "
	if _, err := uc.Advise(context.Background(), req); err != nil {
		t.Fatalf("advise: %v", err)
	}
	if req.Crop != "tomato" {
		t.Fatalf("crop not normalized: %q", req.Crop)
	}
}

func TestAdviseNoMarkets(t *testing.T) {
	deps, _, _, publisher, metrics := testDeps(t)
	deps.Markets = &fakeMarkets{options: nil}
	uc := NewAdvisorUseCase(deps)

	_, err := uc.Advise(context.Background(), adviseRequest())
	if !errors.Is(err, models.ErrNoMarketData) {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("nothing should be published on failure")
	}
	if len(metrics.errs) != 1 || metrics.errs[0] != "no_market_data" {
		t.Fatalf("error metric = %v", metrics.errs)
	}
}

func TestAdviseWeatherFailure(t *testing.T) {
	deps, weather, _, _, metrics := testDeps(t)
	weather.err = models.ErrDataUnavailable
	uc := NewAdvisorUseCase(deps)

	_, err := uc.Advise(context.Background(), adviseRequest())
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if len(metrics.errs) != 1 || metrics.errs[0] != "weather" {
		t.Fatalf("error metric = %v", metrics.errs)
	}
}

func TestAdvisePublishFailureIsNonFatal(t *testing.T) {
	deps, _, _, publisher, _ := testDeps(t)
	publisher.err = errors.New("broker down")
	uc := NewAdvisorUseCase(deps)

	if _, err := uc.Advise(context.Background(), adviseRequest()); err != nil {
		t.Fatalf("publish failure must not fail the advisory: %v", err)
	}
}

func TestAdviseServesFromCache(t *testing.T) {
	deps, weather, _, publisher, _ := testDeps(t)
	deps.Cache = cache.NewMemoryCache()
	deps.CacheTTL = time.Minute
	uc := NewAdvisorUseCase(deps)

	first, err := uc.Advise(context.Background(), adviseRequest())
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	second, err := uc.Advise(context.Background(), adviseRequest())
	if err != nil {
		t.Fatalf("advise: %v", err)
	}

	if weather.calls != 1 {
		t.Fatalf("cached advisory must skip the pipeline, weather called %d times", weather.calls)
	}
	if second.AdvisoryID != first.AdvisoryID {
		t.Fatalf("cache returned a different advisory")
	}
	if len(publisher.published) != 1 {
		t.Fatalf("cached hit must not republish, got %d", len(publisher.published))
	}
}

func TestPriceForecast(t *testing.T) {
	deps, _, _, _, _ := testDeps(t)
	uc := NewAdvisorUseCase(deps)

	res := uc.PriceForecast(context.Background(), &models.PriceForecastRequest{
		Crop: "tomato", CurrentPrice: 25, HarvestDays: 10,
	})
	if res.ForecastPrice != 30 {
		t.Fatalf("forecast price = %v, want 30", res.ForecastPrice)
	}
	if res.ChangePct != 20 {
		t.Fatalf("change pct = %v, want 20", res.ChangePct)
	}
	if !strings.ContainsAny(res.ForecastMonth, "JFMASOND") {
		t.Fatalf("forecast month missing: %q", res.ForecastMonth)
	}
}
