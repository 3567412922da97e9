package knowledge

import (
	"sort"
	"strings"
)

// TransportRatePerKm is the assumed haulage rate in currency per kg per
// 100 km. Cost per kg = rate * km / 100.
const TransportRatePerKm = 0.15

// districtMandiDistanceKm maps a district to approximate road distances
// (km) toward its reachable wholesale markets.
var districtMandiDistanceKm = map[string]map[string]float64{
	"nashik":     {"Nashik": 15, "Pune": 210, "Mumbai": 170, "Aurangabad": 240},
	"pune":       {"Pune": 10, "Nashik": 210, "Mumbai": 160, "Solapur": 240},
	"nagpur":     {"Nagpur": 12, "Amravati": 150, "Wardha": 75},
	"amravati":   {"Amravati": 10, "Nagpur": 150, "Akola": 110},
	"kolhapur":   {"Kolhapur": 8, "Pune": 230, "Sangli": 50},
	"aurangabad": {"Aurangabad": 10, "Nashik": 240, "Latur": 200},
	"indore":     {"Indore": 12, "Bhopal": 195, "Ujjain": 55},
	"bhopal":     {"Bhopal": 10, "Indore": 195, "Sagar": 180},
}

// defaultMandiDistanceKm is used when the district is unknown.
var defaultMandiDistanceKm = map[string]float64{
	"Local APMC":        20,
	"Nearest City APMC": 100,
	"District HQ APMC":  60,
}

// DistancesFor returns the distance table for a district, or the default
// table when the district is unknown.
func DistancesFor(district string) map[string]float64 {
	if m, ok := districtMandiDistanceKm[strings.ToLower(strings.TrimSpace(district))]; ok {
		return m
	}
	return defaultMandiDistanceKm
}

// MedianDistanceKm returns the median distance of a district's table,
// the fallback when a market has no direct entry.
func MedianDistanceKm(district string) float64 {
	m := DistancesFor(district)
	km := make([]float64, 0, len(m))
	for _, v := range m {
		km = append(km, v)
	}
	sort.Float64s(km)
	return km[len(km)/2]
}

// yieldKgPerAcre is the expected yield density per crop.
var yieldKgPerAcre = map[string]float64{
	"tomato":   8000,
	"wheat":    1500,
	"rice":     1800,
	"onion":    10000,
	"potato":   12000,
	"soybean":  900,
	"cotton":   500,
	"maize":    2000,
	"chickpea": 800,
}

const defaultYieldKgPerAcre = 2000

// YieldKgPerAcre returns the yield density for a crop, defaulting for
// unknown crops.
func YieldKgPerAcre(crop string) float64 {
	if y, ok := yieldKgPerAcre[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return y
	}
	return defaultYieldKgPerAcre
}

// MarketBenchmark is one static fallback entry used when the price table
// has no matching rows: a known market with benchmark price and transport
// cost per kg. A designed degradation path, not an error.
type MarketBenchmark struct {
	Market      string
	PricePerKg  float64
	TransportKg float64
}

var fallbackMarkets = map[string][]MarketBenchmark{
	"tomato":  {{"Nashik APMC", 28.5, 2.1}, {"Pune APMC", 31.0, 5.8}, {"Aurangabad APMC", 24.0, 3.2}},
	"wheat":   {{"Indore APMC", 21.5, 1.2}, {"Bhopal APMC", 20.8, 0.95}, {"Local Dealer", 19.8, 0.0}},
	"rice":    {{"Nagpur APMC", 22.0, 1.8}, {"Amravati APMC", 20.5, 1.2}, {"Wardha APMC", 19.0, 0.8}},
	"onion":   {{"Lasalgaon APMC", 18.5, 1.8}, {"Nashik APMC", 16.0, 2.1}, {"Mumbai Vashi", 20.0, 6.5}},
	"potato":  {{"Agra APMC", 14.0, 2.0}, {"Kanpur APMC", 13.5, 1.6}, {"Local Market", 11.0, 0.3}},
	"soybean": {{"Indore APMC", 42.0, 1.5}, {"Bhopal APMC", 41.5, 1.2}, {"Dewas APMC", 40.0, 0.8}},
	"cotton":  {{"Akola APMC", 65.0, 1.8}, {"Amravati APMC", 63.0, 1.5}, {"Nagpur APMC", 61.0, 2.2}},
	"maize":   {{"Davangere APMC", 18.0, 1.4}, {"Hubli APMC", 17.5, 1.8}, {"Dharwad APMC", 17.0, 1.2}},
}

var defaultFallbackMarkets = []MarketBenchmark{
	{"Local APMC", 20.0, 1.5},
	{"District APMC", 19.0, 1.2},
	{"City Market", 18.0, 2.0},
}

// FallbackMarketsFor returns the static benchmark triples for a crop.
func FallbackMarketsFor(crop string) []MarketBenchmark {
	if b, ok := fallbackMarkets[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return b
	}
	return defaultFallbackMarkets
}

// seasonalMultipliers adjust a current price toward the harvest month.
// Crops without an entry use an identity multiplier.
var seasonalMultipliers = map[string][12]float64{
	"tomato": {1.1, 1.0, 1.15, 0.90, 0.85, 0.95, 1.05, 1.0, 0.95, 1.0, 1.1, 1.2},
	"onion":  {1.2, 1.0, 0.90, 0.85, 1.10, 1.40, 1.50, 1.3, 1.20, 1.1, 1.0, 1.1},
	"wheat":  {0.9, 0.9, 0.95, 1.05, 1.10, 1.05, 1.0, 1.0, 1.00, 1.0, 1.0, 0.95},
}

// SeasonalMultiplier returns the price multiplier for a crop in a given
// month (1..12).
func SeasonalMultiplier(crop string, month int) float64 {
	m, ok := seasonalMultipliers[strings.ToLower(strings.TrimSpace(crop))]
	if !ok || month < 1 || month > 12 {
		return 1.0
	}
	return m[month-1]
}
