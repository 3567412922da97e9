package models

// Explanation holds one plain-language paragraph per reasoning domain.
// Pure formatting over already-computed outputs; nothing here re-derives
// numbers.
type Explanation struct {
	WeatherReason  string `json:"weather_reason"`
	PriceReason    string `json:"price_reason"`
	CropReason     string `json:"crop_reason"`
	SpoilageReason string `json:"spoilage_reason"`
}

// ReasoningStep is one numbered entry of the "why" panel.
type ReasoningStep struct {
	StepNum string `json:"step_num"`
	Title   string `json:"title"`
	Desc    string `json:"desc"`
}

// ConfidenceInfo is the composite confidence score with its variance band.
// Score is always within [55,92].
type ConfidenceInfo struct {
	Score    int    `json:"score"`
	Label    string `json:"label"`
	Basis    string `json:"basis"`
	Variance string `json:"variance"`
}
