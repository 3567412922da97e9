package models

type Perishability string

const (
	PerishabilityHigh   Perishability = "high"
	PerishabilityMedium Perishability = "medium"
	PerishabilityLow    Perishability = "low"
)

// PreservationAction is one ranked mitigation step. SpoilageAfter is the
// residual spoilage percentage once this and every higher-ranked action
// have been applied, floored at 5.
type PreservationAction struct {
	Rank          int     `json:"rank"`
	Title         string  `json:"title"`
	Detail        string  `json:"detail"`
	CostDisplay   string  `json:"cost_display"`
	CostValue     float64 `json:"cost_value"`
	Effectiveness int     `json:"effectiveness"`
	SpoilageAfter int     `json:"spoilage_after"`
}
