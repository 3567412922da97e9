package models

import "time"

type WeatherCondition string

const (
	ConditionSunny  WeatherCondition = "sunny"
	ConditionCloudy WeatherCondition = "cloudy"
	ConditionRain   WeatherCondition = "rain"
)

// WeatherDay is one forecast day. Never mutated after creation.
type WeatherDay struct {
	Date        time.Time        `json:"date"`
	TempMaxC    float64          `json:"temp_max_c"`
	TempMinC    float64          `json:"temp_min_c"`
	HumidityPct float64          `json:"humidity_pct"`
	RainfallMM  float64          `json:"rainfall_mm"`
	Condition   WeatherCondition `json:"condition"`
}

// WeatherForecast is an ordered multi-day forecast for one location.
// The aggregate fields are derived from Days and must be recomputed if
// the day sequence changes; use Recompute for that.
type WeatherForecast struct {
	Location    string       `json:"location"`
	Days        []WeatherDay `json:"days"`
	AvgTempC    float64      `json:"avg_temp_c"`
	AvgHumidity float64      `json:"avg_humidity"`
	RainDays    int          `json:"rain_days"`
}

// Recompute refreshes the derived aggregates from the day sequence.
func (f *WeatherForecast) Recompute() {
	f.AvgTempC, f.AvgHumidity, f.RainDays = 0, 0, 0
	if len(f.Days) == 0 {
		return
	}
	var sumT, sumH float64
	for _, d := range f.Days {
		sumT += d.TempMaxC
		sumH += d.HumidityPct
		if d.RainfallMM > 0 {
			f.RainDays++
		}
	}
	n := float64(len(f.Days))
	f.AvgTempC = round1(sumT / n)
	f.AvgHumidity = round1(sumH / n)
}

// Origin returns the first forecast date. Harvest offsets are counted
// from this day so that predictions are pure functions of the forecast.
func (f *WeatherForecast) Origin() time.Time {
	if len(f.Days) == 0 {
		return time.Time{}
	}
	return f.Days[0].Date
}
