package models

import "strings"

// Closed categorical types. Raw request strings are validated with `oneof`
// tags and parsed into these at the boundary; everything downstream works
// with the typed values only.

type HarvestStage string

const (
	StageFifteenDays HarvestStage = "15days"
	StageSevenDays   HarvestStage = "7days"
	StageReady       HarvestStage = "ready"
	StageOverdue     HarvestStage = "overdue"
)

type StorageType string

const (
	StorageNone      StorageType = "none"
	StorageWarehouse StorageType = "warehouse"
	StorageCold      StorageType = "cold"
	StorageHome      StorageType = "home"
)

// AdviseRequest is the validated farmer request for a full advisory.
type AdviseRequest struct {
	Crop        string  `json:"crop" validate:"required,min=2,max=40"`
	State       string  `json:"state" validate:"required,min=2,max=40"`
	District    string  `json:"district" validate:"required,min=2,max=40"`
	Stage       string  `json:"harvest_stage" default:"ready" validate:"oneof=15days 7days ready overdue"`
	Storage     string  `json:"storage_type" default:"none" validate:"oneof=none warehouse cold home"`
	LandSize    float64 `json:"land_size" validate:"required,gt=0,lte=1000"`
	HorizonDays int     `json:"horizon_days" default:"7" validate:"gte=1,lte=14"`
}

// Normalize lowercases and trims the free-text fields in place.
func (r *AdviseRequest) Normalize() {
	r.Crop = strings.ToLower(strings.TrimSpace(r.Crop))
	r.State = strings.ToLower(strings.TrimSpace(r.State))
	r.District = strings.ToLower(strings.TrimSpace(r.District))
}

// HarvestStage returns the typed stage. Call after validation.
func (r *AdviseRequest) HarvestStage() HarvestStage { return HarvestStage(r.Stage) }

// StorageType returns the typed storage facility. Call after validation.
func (r *AdviseRequest) StorageType() StorageType { return StorageType(r.Storage) }

// PriceForecastRequest is the request for the seasonal price-forecast helper.
type PriceForecastRequest struct {
	Crop         string  `query:"crop" json:"crop" validate:"required,min=2,max=40"`
	CurrentPrice float64 `query:"current_price" json:"current_price" validate:"required,gt=0"`
	HarvestDays  int     `query:"harvest_days" json:"harvest_days" default:"7" validate:"gte=0,lte=120"`
}
