package inference

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/services/knowledge"
	xhttp "AgriChain/pkg/http"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

const defaultOpenWeatherURL = "https://api.openweathermap.org/data/3.0/onecall"

// OpenWeatherProvider fetches daily forecasts from the OpenWeatherMap
// One Call API. Districts are geocoded through the static coordinate
// table, unknown districts fall back to the country centroid.
type OpenWeatherProvider struct {
	client  *xhttp.Client
	apiKey  string
	baseURL string
	log     *logger.Logger
}

// NewOpenWeatherProvider creates the live forecast backend.
func NewOpenWeatherProvider(apiKey, baseURL string, timeout time.Duration, log *logger.Logger) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = defaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		apiKey:  apiKey,
		baseURL: baseURL,
		log:     log,
	}
}

type openWeatherResponse struct {
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Max float64 `json:"max"`
			Min float64 `json:"min"`
		} `json:"temp"`
		Humidity float64 `json:"humidity"`
		Rain     float64 `json:"rain"`
		Weather  []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"daily"`
}

// Forecast fetches up to horizonDays of daily forecast for the district.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, location string, horizonDays int) (models.WeatherForecast, error) {
	if p.apiKey == "" {
		return models.WeatherForecast{}, fmt.Errorf("%w: openweather api key not configured", models.ErrDataUnavailable)
	}

	location = strings.ToLower(strings.TrimSpace(location))
	coord := knowledge.CoordFor(location)

	var raw openWeatherResponse
	err := p.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    p.baseURL,
		QueryParams: map[string][]string{
			"lat":     {strconv.FormatFloat(coord.Lat, 'f', 4, 64)},
			"lon":     {strconv.FormatFloat(coord.Lon, 'f', 4, 64)},
			"exclude": {"minutely,hourly,alerts"},
			"appid":   {p.apiKey},
			"units":   {"metric"},
		},
	}, &raw)
	if err != nil {
		p.log.Error("openweather fetch failed", logger.String("district", location), logger.Error(err))
		return models.WeatherForecast{}, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err)
	}

	if len(raw.Daily) == 0 {
		return models.WeatherForecast{}, fmt.Errorf("%w: openweather returned no daily data", models.ErrDataUnavailable)
	}

	forecast := models.WeatherForecast{
		Location: util.Title(location),
		Days:     make([]models.WeatherDay, 0, horizonDays),
	}
	for i, d := range raw.Daily {
		if i >= horizonDays {
			break
		}
		day := time.Unix(d.Dt, 0).UTC()
		condition := models.ConditionSunny
		if len(d.Weather) > 0 {
			switch strings.ToLower(d.Weather[0].Main) {
			case "rain", "drizzle", "thunderstorm":
				condition = models.ConditionRain
			case "clouds":
				condition = models.ConditionCloudy
			}
		}
		forecast.Days = append(forecast.Days, models.WeatherDay{
			Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			TempMaxC:    util.Round1(d.Temp.Max),
			TempMinC:    util.Round1(d.Temp.Min),
			HumidityPct: util.Round1(d.Humidity),
			RainfallMM:  util.Round1(d.Rain),
			Condition:   condition,
		})
	}

	forecast.Recompute()
	return forecast, nil
}
