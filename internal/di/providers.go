package di

import (
	"fmt"

	domrepo "AgriChain/internal/domain/repository"
	"AgriChain/internal/domain/service"
	"AgriChain/internal/handler/api"
	internalrepo "AgriChain/internal/repository"
	"AgriChain/internal/service/ratelimit"
	"AgriChain/internal/services/inference"
	"AgriChain/internal/usecase"
	"AgriChain/pkg/cache"
	pkgch "AgriChain/pkg/clickhouse"
	"AgriChain/pkg/config"
	pkgkafka "AgriChain/pkg/kafka"
	applogger "AgriChain/pkg/logger"
	"AgriChain/pkg/metrics"
	"AgriChain/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvidePriceStore selects the price backend from config.
func ProvidePriceStore(cfg *config.Config, l *applogger.Logger) (domrepo.PriceStore, error) {
	switch cfg.Data.PriceBackend {
	case "clickhouse":
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithMaxConnections(10, 5),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		return internalrepo.NewCHPriceStore(client, cfg.ClickHouse.PriceTable, l), nil
	default:
		return internalrepo.NewCSVPriceStore(cfg.Data.PriceCSVPath, l), nil
	}
}

// ProvideWeatherProvider selects the forecast source from config.
func ProvideWeatherProvider(cfg *config.Config, l *applogger.Logger) service.WeatherProvider {
	if cfg.Weather.Provider == "openweather" {
		return inference.NewOpenWeatherProvider(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, l)
	}
	return inference.NewSyntheticWeather(l)
}

// ProvidePublisher creates the advisory publisher, Kafka-backed when enabled.
func ProvidePublisher(cfg *config.Config, l *applogger.Logger) (domrepo.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NewNoopPublisher(), nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaAdvisoryPublisher(producer, cfg.Kafka.Topic, l), nil
}

// ProvideCache creates the response cache, or nil when caching is disabled.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Addr),
			cache.WithRedisPassword(cfg.Cache.Password),
			cache.WithRedisDB(cfg.Cache.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideAdvisor assembles the inference pipeline.
func ProvideAdvisor(
	cfg *config.Config,
	store domrepo.PriceStore,
	weather service.WeatherProvider,
	publisher domrepo.Publisher,
	m domrepo.Metrics,
	cacheSvc cache.Service,
	l *applogger.Logger,
) *usecase.AdvisorUseCase {
	ranker := inference.NewMarketRanker(store, cfg.Data.StateMatchMinRows, l)
	return usecase.NewAdvisorUseCase(usecase.AdvisorDeps{
		Weather:         weather,
		Harvest:         inference.NewHarvestPredictor(l),
		Markets:         ranker,
		Prices:          ranker,
		Spoilage:        inference.NewSpoilageModel(l),
		Preservation:    inference.NewPreservationRanker(l),
		Explainer:       inference.NewExplainEngine(l),
		Publisher:       publisher,
		Metrics:         m,
		Cache:           cacheSvc,
		Logger:          l,
		TransitSpeedKmh: cfg.Advisory.TransitSpeedKmh,
		CacheTTL:        cfg.Advisory.CacheTTL,
	})
}

// ProvideHandler creates the HTTP handler with per-IP rate limiting.
func ProvideHandler(cfg *config.Config, advisor *usecase.AdvisorUseCase, store domrepo.PriceStore, l *applogger.Logger) *api.AdvisoryHandler {
	limiter := ratelimit.New(cfg.Advisory.RateLimitRPS, cfg.Advisory.RateLimitBurst)
	return api.NewAdvisoryHandler(l, advisor, store, limiter)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler *api.AdvisoryHandler,
	store domrepo.PriceStore,
	publisher domrepo.Publisher,
	cacheSvc cache.Service,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, l, handler, store, publisher, cacheSvc)
}
