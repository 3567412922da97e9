package models

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevelFor maps a clamped risk percentage onto the fixed bands.
func RiskLevelFor(riskPct int) RiskLevel {
	switch {
	case riskPct < 20:
		return RiskLow
	case riskPct < 45:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// SpoilageRisk is the post-harvest spoilage assessment.
// RiskPct is always within [5,95] and RiskLevel is a pure function of it.
type SpoilageRisk struct {
	RiskPct     int       `json:"risk_pct"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Description string    `json:"description"`
	Factors     []Factor  `json:"factors"`
	GaugeOffset float64   `json:"gauge_offset"`
}
