package knowledge

import "strings"

// MonthlyWeather is the seasonal band the synthetic forecast draws from:
// target max/min temperature, humidity, and rain probability for a month.
type MonthlyWeather struct {
	TempMaxC float64
	TempMinC float64
	Humidity float64
	RainProb float64
}

// monthlyProfiles is indexed by calendar month (1..12).
var monthlyProfiles = [12]MonthlyWeather{
	{TempMaxC: 28, TempMinC: 12, Humidity: 55, RainProb: 0.05},
	{TempMaxC: 32, TempMinC: 15, Humidity: 45, RainProb: 0.05},
	{TempMaxC: 37, TempMinC: 19, Humidity: 35, RainProb: 0.08},
	{TempMaxC: 41, TempMinC: 23, Humidity: 30, RainProb: 0.10},
	{TempMaxC: 43, TempMinC: 26, Humidity: 35, RainProb: 0.15},
	{TempMaxC: 35, TempMinC: 25, Humidity: 75, RainProb: 0.55},
	{TempMaxC: 32, TempMinC: 24, Humidity: 85, RainProb: 0.70},
	{TempMaxC: 31, TempMinC: 23, Humidity: 88, RainProb: 0.65},
	{TempMaxC: 32, TempMinC: 23, Humidity: 78, RainProb: 0.45},
	{TempMaxC: 33, TempMinC: 20, Humidity: 65, RainProb: 0.20},
	{TempMaxC: 30, TempMinC: 15, Humidity: 55, RainProb: 0.08},
	{TempMaxC: 27, TempMinC: 11, Humidity: 50, RainProb: 0.05},
}

// MonthlyProfile returns the seasonal band for a calendar month (1..12).
func MonthlyProfile(month int) MonthlyWeather {
	if month < 1 || month > 12 {
		month = 1
	}
	return monthlyProfiles[month-1]
}

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64
	Lon float64
}

// districtCoords covers the districts with dedicated coordinates; used by
// the live-forecast backend and as dataset-coverage signal for confidence.
var districtCoords = map[string]Coord{
	"nashik":     {19.9975, 73.7898},
	"pune":       {18.5204, 73.8567},
	"nagpur":     {21.1458, 79.0882},
	"amravati":   {20.9374, 77.7796},
	"kolhapur":   {16.7050, 74.2433},
	"aurangabad": {19.8762, 75.3433},
	"indore":     {22.7196, 75.8577},
	"bhopal":     {23.2599, 77.4126},
	"jaipur":     {26.9124, 75.7873},
	"lucknow":    {26.8467, 80.9462},
	"chandigarh": {30.7333, 76.7794},
	"ahmedabad":  {23.0225, 72.5714},
	"bengaluru":  {12.9716, 77.5946},
	"hyderabad":  {17.3850, 78.4867},
}

// defaultCoord is the country centroid, used for unknown districts.
var defaultCoord = Coord{20.5937, 78.9629}

// CoordFor returns coordinates for a district, defaulting when unknown.
func CoordFor(district string) Coord {
	if c, ok := districtCoords[strings.ToLower(strings.TrimSpace(district))]; ok {
		return c
	}
	return defaultCoord
}

// KnownDistrict reports whether the district has dedicated coordinates.
func KnownDistrict(district string) bool {
	_, ok := districtCoords[strings.ToLower(strings.TrimSpace(district))]
	return ok
}

// SupportedStates lists the states the service advertises.
func SupportedStates() []string {
	return []string{
		"maharashtra", "punjab", "uttar_pradesh", "madhya_pradesh",
		"rajasthan", "karnataka", "gujarat", "haryana",
		"andhra_pradesh", "telangana", "odisha",
	}
}
