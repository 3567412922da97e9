// Package knowledge holds the static agronomic reference tables the
// inference services read. Everything here is package-level, read-only
// data: loaded at compile time, never mutated, safe for concurrent use.
package knowledge

import (
	"strings"

	"AgriChain/internal/domain/models"
)

// CropProfile captures the per-crop agronomic parameters driving the
// harvest-window search and spoilage scoring.
type CropProfile struct {
	Name              string
	MaturityDays      map[models.HarvestStage]int
	IdealTempMinC     float64
	IdealTempMaxC     float64
	HumidityTolerance float64
	HarvestWindowDays int
	Perishability     models.Perishability
	DelayPenaltyDays  int
	CuringDays        int
}

// DefaultCrop is the profile unknown crops fall back to.
const DefaultCrop = "tomato"

var cropProfiles = map[string]CropProfile{
	"tomato": {
		Name:              "tomato",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 15, models.StageSevenDays: 7, models.StageReady: 0, models.StageOverdue: -3},
		IdealTempMinC:     18,
		IdealTempMaxC:     28,
		HumidityTolerance: 65,
		HarvestWindowDays: 4,
		Perishability:     models.PerishabilityHigh,
		DelayPenaltyDays:  4,
	},
	"wheat": {
		Name:              "wheat",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 35, models.StageSevenDays: 28, models.StageReady: 0, models.StageOverdue: -5},
		IdealTempMinC:     15,
		IdealTempMaxC:     25,
		HumidityTolerance: 14, // grain moisture threshold, not air humidity
		HarvestWindowDays: 5,
		Perishability:     models.PerishabilityLow,
		DelayPenaltyDays:  7,
	},
	"rice": {
		Name:              "rice",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 20, models.StageSevenDays: 10, models.StageReady: 0, models.StageOverdue: -5},
		IdealTempMinC:     20,
		IdealTempMaxC:     32,
		HumidityTolerance: 75,
		HarvestWindowDays: 5,
		Perishability:     models.PerishabilityLow,
		DelayPenaltyDays:  6,
		CuringDays:        2,
	},
	"onion": {
		Name:              "onion",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 10, models.StageSevenDays: 5, models.StageReady: 0, models.StageOverdue: -4},
		IdealTempMinC:     20,
		IdealTempMaxC:     30,
		HumidityTolerance: 60,
		HarvestWindowDays: 5,
		Perishability:     models.PerishabilityMedium,
		DelayPenaltyDays:  6,
		CuringDays:        10,
	},
	"potato": {
		Name:              "potato",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 15, models.StageSevenDays: 8, models.StageReady: 0, models.StageOverdue: -3},
		IdealTempMinC:     15,
		IdealTempMaxC:     22,
		HumidityTolerance: 70,
		HarvestWindowDays: 6,
		Perishability:     models.PerishabilityMedium,
		DelayPenaltyDays:  5,
		CuringDays:        3,
	},
	"soybean": {
		Name:              "soybean",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 20, models.StageSevenDays: 12, models.StageReady: 0, models.StageOverdue: -5},
		IdealTempMinC:     20,
		IdealTempMaxC:     30,
		HumidityTolerance: 50,
		HarvestWindowDays: 5,
		Perishability:     models.PerishabilityLow,
		DelayPenaltyDays:  8,
	},
	"cotton": {
		Name:              "cotton",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 20, models.StageSevenDays: 10, models.StageReady: 0, models.StageOverdue: -7},
		IdealTempMinC:     25,
		IdealTempMaxC:     35,
		HumidityTolerance: 55,
		HarvestWindowDays: 7,
		Perishability:     models.PerishabilityLow,
		DelayPenaltyDays:  10,
	},
	"maize": {
		Name:              "maize",
		MaturityDays:      map[models.HarvestStage]int{models.StageFifteenDays: 18, models.StageSevenDays: 9, models.StageReady: 0, models.StageOverdue: -4},
		IdealTempMinC:     18,
		IdealTempMaxC:     30,
		HumidityTolerance: 60,
		HarvestWindowDays: 5,
		Perishability:     models.PerishabilityMedium,
		DelayPenaltyDays:  5,
		CuringDays:        2,
	},
}

// ProfileFor looks up a crop profile case-insensitively, falling back to
// the default profile for unknown crops.
func ProfileFor(crop string) CropProfile {
	if p, ok := cropProfiles[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return p
	}
	return cropProfiles[DefaultCrop]
}

// KnownCrop reports whether the crop has a profile of its own.
func KnownCrop(crop string) bool {
	_, ok := cropProfiles[strings.ToLower(strings.TrimSpace(crop))]
	return ok
}

// SupportedCrops lists the crops with dedicated profiles or price aliases.
func SupportedCrops() []string {
	return []string{"tomato", "wheat", "rice", "onion", "potato", "soybean", "cotton", "maize", "chickpea"}
}

// commodityAliases maps crop names to dataset commodity keywords.
var commodityAliases = map[string][]string{
	"tomato":   {"Tomato"},
	"wheat":    {"Wheat"},
	"rice":     {"Paddy", "Rice"},
	"onion":    {"Onion"},
	"potato":   {"Potato"},
	"soybean":  {"Soyabean", "Soybean"},
	"cotton":   {"Cotton"},
	"maize":    {"Maize"},
	"chickpea": {"Bengal Gram", "Chickpea"},
}

// CommodityKeywords returns lowercase dataset keywords for a crop name.
// Unknown crops match on their own name.
func CommodityKeywords(crop string) []string {
	crop = strings.ToLower(strings.TrimSpace(crop))
	aliases, ok := commodityAliases[crop]
	if !ok {
		aliases = []string{crop}
	}
	out := make([]string, len(aliases))
	for i, a := range aliases {
		out[i] = strings.ToLower(a)
	}
	return out
}

// PerishabilityBaseRisk is the additive spoilage base per decay class.
var PerishabilityBaseRisk = map[models.Perishability]float64{
	models.PerishabilityHigh:   35,
	models.PerishabilityMedium: 20,
	models.PerishabilityLow:    10,
}

// StorageSpoilageFactor scales base risk by storage facility quality.
var StorageSpoilageFactor = map[models.StorageType]float64{
	models.StorageCold:      0.4,
	models.StorageWarehouse: 0.7,
	models.StorageHome:      1.0,
	models.StorageNone:      1.3,
}
