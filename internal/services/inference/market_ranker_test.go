package inference

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"AgriChain/internal/domain/models"
)

type fakePriceStore struct {
	records []models.PriceRecord
	err     error
}

func (f *fakePriceStore) FilterByCommodity(_ context.Context, keywords []string) ([]models.PriceRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.PriceRecord, 0)
	for _, rec := range f.records {
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(rec.Commodity), kw) {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

func (f *fakePriceStore) Rows(_ context.Context) (int, error) { return len(f.records), nil }
func (f *fakePriceStore) Close() error                        { return nil }

func day(offset int) time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func tomatoRecords() []models.PriceRecord {
	recs := make([]models.PriceRecord, 0)
	markets := []struct {
		name  string
		modal float64
	}{
		{"Nashik", 2850}, // ₹/quintal
		{"Pune", 3100},
		{"Aurangabad", 2400},
	}
	for _, m := range markets {
		for i := 0; i < 4; i++ {
			recs = append(recs, models.PriceRecord{
				State:       "Maharashtra",
				District:    "Nashik",
				Market:      m.name,
				Commodity:   "Tomato",
				ArrivalDate: day(i),
				ModalPrice:  m.modal + float64(i*10),
			})
		}
	}
	return recs
}

func TestRankOrdersByNetProfit(t *testing.T) {
	r := NewMarketRanker(&fakePriceStore{records: tomatoRecords()}, 2, testLogger(t))

	options, err := r.Rank(context.Background(), "tomato", "maharashtra", "nashik", 2)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
	for i := 1; i < len(options); i++ {
		if options[i].NetProfit > options[i-1].NetProfit {
			t.Fatalf("options not sorted by net profit: %v then %v", options[i-1].NetProfit, options[i].NetProfit)
		}
	}

	bestCount := 0
	for i, o := range options {
		if o.IsBest {
			bestCount++
			if i != 0 {
				t.Fatalf("best flag on position %d", i)
			}
		}
		if o.BarWidth < 20 || o.BarWidth > 100 {
			t.Fatalf("bar width %d out of range", o.BarWidth)
		}
	}
	if bestCount != 1 {
		t.Fatalf("expected exactly one best option, got %d", bestCount)
	}
}

func TestRankConvertsQuintalPrices(t *testing.T) {
	r := NewMarketRanker(&fakePriceStore{records: tomatoRecords()}, 2, testLogger(t))

	options, err := r.Rank(context.Background(), "tomato", "maharashtra", "nashik", 1)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	for _, o := range options {
		if o.PricePerKg < 1 || o.PricePerKg > 100 {
			t.Fatalf("price %v looks unconverted (expected ₹/kg range)", o.PricePerKg)
		}
	}
}

func TestRankFallsBackWhenNoRows(t *testing.T) {
	r := NewMarketRanker(&fakePriceStore{}, 2, testLogger(t))

	options, err := r.Rank(context.Background(), "tomato", "maharashtra", "nashik", 2)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 benchmark options, got %d", len(options))
	}
	if !options[0].IsBest {
		t.Fatalf("first benchmark option must be best")
	}
	if options[0].Trend != "Seasonal demand rising" {
		t.Fatalf("unexpected best trend %q", options[0].Trend)
	}
	for i := 1; i < len(options); i++ {
		if options[i].NetProfit > options[i-1].NetProfit {
			t.Fatalf("benchmark options not sorted by profit")
		}
		if options[i].Trend != "Stable" {
			t.Fatalf("unexpected trend %q", options[i].Trend)
		}
	}
}

func TestRankFallsBackOnStoreError(t *testing.T) {
	r := NewMarketRanker(&fakePriceStore{err: errors.New("disk gone")}, 2, testLogger(t))

	options, err := r.Rank(context.Background(), "maize", "karnataka", "davangere", 1)
	if err != nil {
		t.Fatalf("rank should degrade, not fail: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 benchmark options, got %d", len(options))
	}
	// Benchmarks must come out profit-sorted even when the static table
	// is not.
	for i := 1; i < len(options); i++ {
		if options[i].NetProfit > options[i-1].NetProfit {
			t.Fatalf("benchmark options not sorted: %v then %v", options[i-1].NetProfit, options[i].NetProfit)
		}
	}
}

func TestRankTrendRequiresTwoRows(t *testing.T) {
	recs := []models.PriceRecord{{
		State: "Maharashtra", Market: "Solo Mandi", Commodity: "Tomato",
		ArrivalDate: day(0), ModalPrice: 2500,
	}}
	r := NewMarketRanker(&fakePriceStore{records: recs}, 2, testLogger(t))

	options, err := r.Rank(context.Background(), "tomato", "maharashtra", "nashik", 1)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Trend != "Insufficient data for trend" {
		t.Fatalf("unexpected trend %q", options[0].Trend)
	}
}

func TestForecastPriceSeasonalMultiplier(t *testing.T) {
	r := NewMarketRanker(&fakePriceStore{}, 2, testLogger(t))
	from := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)

	// 10 days ahead lands in December; tomato multiplier there is 1.2.
	if got := r.ForecastPrice("tomato", 25, 10, from); got != 30 {
		t.Fatalf("tomato december forecast = %v, want 30", got)
	}
	// Unknown crops use the identity multiplier.
	if got := r.ForecastPrice("dragonfruit", 25, 10, from); got != 25 {
		t.Fatalf("unknown crop forecast = %v, want 25", got)
	}
}
