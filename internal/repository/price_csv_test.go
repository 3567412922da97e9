package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"AgriChain/internal/domain/models"
	applogger "AgriChain/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestCSVStoreFilterByCommodity(t *testing.T) {
	s := NewCSVPriceStore("testdata/commodity_price.csv", testLogger(t))

	recs, err := s.FilterByCommodity(context.Background(), []string{"tomato"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	// Four parseable tomato rows; the NR modal row is skipped on load.
	if len(recs) != 4 {
		t.Fatalf("expected 4 tomato rows, got %d", len(recs))
	}
	for _, r := range recs {
		if r.ModalPrice <= 0 {
			t.Fatalf("row with non-positive modal price survived: %+v", r)
		}
	}
}

func TestCSVStoreFilterMatchesSubstring(t *testing.T) {
	s := NewCSVPriceStore("testdata/commodity_price.csv", testLogger(t))

	recs, err := s.FilterByCommodity(context.Background(), []string{"wheat"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(recs) != 1 || recs[0].Market != "Ludhiana Mandi" {
		t.Fatalf("expected the single wheat row, got %+v", recs)
	}
}

func TestCSVStoreParsesEscapedHeadersAndDates(t *testing.T) {
	s := NewCSVPriceStore("testdata/commodity_price.csv", testLogger(t))

	recs, err := s.FilterByCommodity(context.Background(), []string{"onion"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 onion row, got %d", len(recs))
	}
	r := recs[0]
	if r.MinPrice != 1200 || r.MaxPrice != 1800 || r.ModalPrice != 1500 {
		t.Fatalf("price columns misparsed: %+v", r)
	}
	want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !r.ArrivalDate.Equal(want) {
		t.Fatalf("arrival date = %v, want %v", r.ArrivalDate, want)
	}
}

func TestCSVStoreHandlesMixedDateFormats(t *testing.T) {
	s := NewCSVPriceStore("testdata/commodity_price.csv", testLogger(t))

	recs, err := s.FilterByCommodity(context.Background(), []string{"tomato"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	var seen int
	for _, r := range recs {
		if r.Market == "Pune Market Yard" || r.Market == "Kolar APMC" {
			if !r.ArrivalDate.Equal(want) {
				t.Fatalf("%s arrival date = %v, want %v", r.Market, r.ArrivalDate, want)
			}
			seen++
		}
	}
	if seen != 2 {
		t.Fatalf("expected both alternate-format rows, saw %d", seen)
	}
}

func TestCSVStoreRows(t *testing.T) {
	s := NewCSVPriceStore("testdata/commodity_price.csv", testLogger(t))

	n, err := s.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if n != 6 {
		t.Fatalf("rows = %d, want 6 (one skipped)", n)
	}
}

func TestCSVStoreMissingFile(t *testing.T) {
	s := NewCSVPriceStore("testdata/does_not_exist.csv", testLogger(t))

	_, err := s.FilterByCommodity(context.Background(), []string{"tomato"})
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}
