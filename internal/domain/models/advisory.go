package models

import "time"

// Advisory is the full structured result of one inference run.
// All contained values are request-scoped and immutable once assembled.
type Advisory struct {
	AdvisoryID string `json:"advisory_id"`

	// KPI summary values.
	HarvestDateVal  string `json:"harvest_date_val"`
	HarvestDaysVal  string `json:"harvest_days_val"`
	SpoilageVal     string `json:"spoilage_val"`
	SpoilageDescVal string `json:"spoilage_desc_val"`
	ProfitVal       string `json:"profit_val"`
	ProfitDescVal   string `json:"profit_desc_val"`

	// Module outputs.
	Weather             WeatherForecast      `json:"weather"`
	HarvestWindow       HarvestWindow        `json:"harvest_window"`
	Markets             []MarketOption       `json:"markets"`
	SpoilageRisk        SpoilageRisk         `json:"spoilage_risk"`
	PreservationActions []PreservationAction `json:"preservation_actions"`

	// Explainability.
	Explanation    Explanation     `json:"explanation"`
	ReasoningSteps []ReasoningStep `json:"reasoning_steps"`
	Confidence     ConfidenceInfo  `json:"confidence"`

	// Meta.
	DataSources []string  `json:"data_sources"`
	GeneratedAt time.Time `json:"generated_at"`
}
