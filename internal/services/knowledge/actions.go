package knowledge

import "AgriChain/internal/domain/models"

// ActionCandidate is one preservation measure before ranking.
type ActionCandidate struct {
	Title             string
	Detail            string
	Cost              float64
	CostDisplay       string
	Effectiveness     int
	SpoilageReduction int
}

var highPerishabilityActions = []ActionCandidate{
	{
		Title:             "Harvest in early morning (5-8 AM)",
		Detail:            "Cooler temps reduce field heat by 8-10°C. Zero cost, high impact.",
		Cost:              0,
		CostDisplay:       "FREE",
		Effectiveness:     4,
		SpoilageReduction: 8,
	},
	{
		Title:             "Use ventilated crates (not gunny bags)",
		Detail:            "Reduces moisture buildup by 40%. Prevents crush damage.",
		Cost:              1000,
		CostDisplay:       "₹800-1,200",
		Effectiveness:     4,
		SpoilageReduction: 12,
	},
	{
		Title:             "Pre-cooling at nearest cold store (4 hrs)",
		Detail:            "Drops core temperature before transit. Best for >5 hr journeys.",
		Cost:              2750,
		CostDisplay:       "₹2,500-3,000",
		Effectiveness:     5,
		SpoilageReduction: 20,
	},
	{
		Title:             "Apply wax coating (tomato/onion/potato)",
		Detail:            "Reduces water loss and extends shelf life by 2-3 days.",
		Cost:              1500,
		CostDisplay:       "₹1,200-1,800",
		Effectiveness:     3,
		SpoilageReduction: 10,
	},
}

var mediumPerishabilityActions = []ActionCandidate{
	{
		Title:             "Cure produce before storage (7-10 days in shade)",
		Detail:            "Heals surface wounds and hardens skin. Critical for onion/potato.",
		Cost:              0,
		CostDisplay:       "FREE",
		Effectiveness:     5,
		SpoilageReduction: 18,
	},
	{
		Title:             "Use ventilated storage with airflow",
		Detail:            "Reduces internal temperature and ethylene buildup.",
		Cost:              800,
		CostDisplay:       "₹600-1,000",
		Effectiveness:     4,
		SpoilageReduction: 12,
	},
	{
		Title:             "Sort & grade before packing",
		Detail:            "Remove damaged items to prevent spread of rot.",
		Cost:              0,
		CostDisplay:       "FREE",
		Effectiveness:     3,
		SpoilageReduction: 8,
	},
}

var lowPerishabilityActions = []ActionCandidate{
	{
		Title:             "Dry grain to <14% moisture before storage",
		Detail:            "Prevents mould and insect infestation in storage.",
		Cost:              0,
		CostDisplay:       "FREE",
		Effectiveness:     5,
		SpoilageReduction: 15,
	},
	{
		Title:             "Use HDPE / moisture-proof bags",
		Detail:            "Prevents re-absorption of humidity during transit.",
		Cost:              500,
		CostDisplay:       "₹400-600",
		Effectiveness:     4,
		SpoilageReduction: 10,
	},
	{
		Title:             "Store away from direct sunlight & moisture",
		Detail:            "Simple warehouse discipline prevents 8-10% loss.",
		Cost:              0,
		CostDisplay:       "FREE",
		Effectiveness:     3,
		SpoilageReduction: 8,
	},
}

// ActionPoolFor returns the candidate pool for a perishability class.
func ActionPoolFor(p models.Perishability) []ActionCandidate {
	switch p {
	case models.PerishabilityHigh:
		return highPerishabilityActions
	case models.PerishabilityLow:
		return lowPerishabilityActions
	default:
		return mediumPerishabilityActions
	}
}
