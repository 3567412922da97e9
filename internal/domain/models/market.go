package models

import "time"

// PriceRecord is one row of the commodity price reference dataset
// (AGMARKNET export: per-market modal prices by arrival date).
type PriceRecord struct {
	State       string    `json:"state"`
	District    string    `json:"district"`
	Market      string    `json:"market"`
	Commodity   string    `json:"commodity"`
	ArrivalDate time.Time `json:"arrival_date"`
	MinPrice    float64   `json:"min_price"`
	MaxPrice    float64   `json:"max_price"`
	ModalPrice  float64   `json:"modal_price"`
}

// MarketOption is one ranked sell destination. Exactly one option per
// advisory carries IsBest=true; it is the profit-maximizing entry.
type MarketOption struct {
	Name             string  `json:"name"`
	IsBest           bool    `json:"is_best"`
	PricePerKg       float64 `json:"price_per_kg"`
	PriceDisplay     string  `json:"price_display"`
	TransportCost    float64 `json:"transport_cost"`
	TransportDisplay string  `json:"transport_display"`
	NetProfit        float64 `json:"net_profit"`
	NetProfitDisplay string  `json:"net_profit_display"`
	BarWidth         int     `json:"bar_width"`
	DistanceKm       float64 `json:"distance_km"`
	Trend            string  `json:"trend"`
}
