// Package inference implements the advisory pipeline components: forecast
// synthesis, harvest window search, market ranking, spoilage scoring,
// preservation ranking and explanation building. Every component is
// deterministic for a given input so that advisories are reproducible
// within a calendar day.
package inference

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

// SyntheticWeather generates IMD-style forecasts from monthly seasonal
// profiles plus a repeatable per-day variation. No network access.
type SyntheticWeather struct {
	log *logger.Logger
	now func() time.Time
}

// SyntheticOption configures SyntheticWeather.
type SyntheticOption func(*SyntheticWeather)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) SyntheticOption {
	return func(s *SyntheticWeather) {
		s.now = now
	}
}

// NewSyntheticWeather creates the deterministic forecast backend.
func NewSyntheticWeather(log *logger.Logger, opts ...SyntheticOption) *SyntheticWeather {
	s := &SyntheticWeather{
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Forecast builds a horizonDays forecast for the location. The same
// (location, calendar date) pair always yields the same forecast.
func (s *SyntheticWeather) Forecast(_ context.Context, location string, horizonDays int) (models.WeatherForecast, error) {
	location = strings.ToLower(strings.TrimSpace(location))
	if horizonDays < 1 {
		horizonDays = 7
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	profile := knowledge.MonthlyProfile(int(today.Month()))

	forecast := models.WeatherForecast{
		Location: util.Title(location),
		Days:     make([]models.WeatherDay, 0, horizonDays),
	}

	for i := 0; i < horizonDays; i++ {
		d := today.AddDate(0, 0, i)
		seed := daySeed(location, d)
		variation := (seed - 0.5) * 6 // within ±3°C of the seasonal band

		humidity := util.Clamp(util.Round1(profile.Humidity+(seed-0.5)*20), 20, 100)

		isRain := seed < profile.RainProb
		rainfall := 0.0
		if isRain {
			rainfall = util.Round1(seed * 25)
		}

		condition := models.ConditionSunny
		switch {
		case isRain:
			condition = models.ConditionRain
		case humidity > 70:
			condition = models.ConditionCloudy
		}

		forecast.Days = append(forecast.Days, models.WeatherDay{
			Date:        d,
			TempMaxC:    util.Round1(profile.TempMaxC + variation),
			TempMinC:    util.Round1(profile.TempMinC + variation*0.6),
			HumidityPct: humidity,
			RainfallMM:  rainfall,
			Condition:   condition,
		})
	}

	forecast.Recompute()

	s.log.Debug("synthetic forecast generated",
		logger.String("location", location),
		logger.Int("days", horizonDays),
		logger.Int("rain_days", forecast.RainDays),
	)
	return forecast, nil
}

// daySeed maps (location, date) to a repeatable value in [0,1).
func daySeed(location string, d time.Time) float64 {
	h := fnv.New32a()
	h.Write([]byte(location))
	h.Write([]byte{':'})
	h.Write([]byte(d.Format("2006-01-02")))
	return float64(h.Sum32()%10000) / 10000.0
}
