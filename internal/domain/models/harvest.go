package models

import "time"

type Urgency string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyNormal    Urgency = "normal"
	UrgencyPlanAhead Urgency = "plan_ahead"
)

type FactorKind string

const (
	FactorGood FactorKind = "good"
	FactorWarn FactorKind = "warn"
	FactorBad  FactorKind = "bad"
)

// Factor is one plain-language explanation line with a severity kind.
type Factor struct {
	Kind FactorKind `json:"kind"`
	Text string     `json:"text"`
}

// HarvestWindow is the recommended contiguous harvest period.
// EndDate is always StartDate + (window length - 1) days.
type HarvestWindow struct {
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	DisplayLabel      string    `json:"display_label"`
	DaysFromToday     string    `json:"days_from_today"`
	Recommendation    string    `json:"recommendation"`
	RecommendationSub string    `json:"recommendation_sub"`
	Urgency           Urgency   `json:"urgency"`
	Factors           []Factor  `json:"factors"`
}

// LengthDays returns the inclusive window length in days.
func (w HarvestWindow) LengthDays() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}
