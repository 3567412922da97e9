package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"AgriChain/internal/domain/models"
	applogger "AgriChain/pkg/logger"
)

// CSVPriceStore serves the AGMARKNET commodity price export from disk.
// The file is parsed once on first use and held in memory; the dataset
// is a daily snapshot, small enough to keep resident.
type CSVPriceStore struct {
	path string
	l    *applogger.Logger

	once    sync.Once
	loadErr error
	records []models.PriceRecord
}

// NewCSVPriceStore creates the CSV-backed price store.
func NewCSVPriceStore(path string, l *applogger.Logger) *CSVPriceStore {
	return &CSVPriceStore{path: path, l: l}
}

// FilterByCommodity returns all rows whose commodity contains any of the
// lowercase keywords.
func (s *CSVPriceStore) FilterByCommodity(_ context.Context, keywords []string) ([]models.PriceRecord, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	out := make([]models.PriceRecord, 0, 64)
	for _, rec := range s.records {
		commodity := strings.ToLower(rec.Commodity)
		for _, kw := range keywords {
			if strings.Contains(commodity, kw) {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

// Rows returns the total number of loaded price rows.
func (s *CSVPriceStore) Rows(_ context.Context) (int, error) {
	if err := s.load(); err != nil {
		return 0, err
	}
	return len(s.records), nil
}

// Close is a no-op for the in-memory store.
func (s *CSVPriceStore) Close() error { return nil }

func (s *CSVPriceStore) load() error {
	s.once.Do(func() {
		start := time.Now()
		f, err := os.Open(s.path)
		if err != nil {
			s.loadErr = fmt.Errorf("%w: open price csv: %v", models.ErrDataUnavailable, err)
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1

		header, err := r.Read()
		if err != nil {
			s.loadErr = fmt.Errorf("%w: read csv header: %v", models.ErrDataUnavailable, err)
			return
		}
		cols := columnIndex(header)

		required := []string{"state", "district", "market", "commodity", "arrival_date", "modal_price"}
		for _, c := range required {
			if _, ok := cols[c]; !ok {
				s.loadErr = fmt.Errorf("%w: price csv missing column %q", models.ErrDataUnavailable, c)
				return
			}
		}

		skipped := 0
		for {
			row, err := r.Read()
			if err != nil {
				break
			}
			rec, ok := parseRow(row, cols)
			if !ok {
				skipped++
				continue
			}
			s.records = append(s.records, rec)
		}

		s.l.Info("price dataset loaded",
			applogger.String("path", s.path),
			applogger.Int("rows", len(s.records)),
			applogger.Int("skipped", skipped),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	})
	return s.loadErr
}

// columnIndex normalizes the export's header names. The government portal
// emits XML-escaped price columns like "Min_x0020_Price".
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
		key = strings.ReplaceAll(key, "_x0020_", "_")
		cols[key] = i
	}
	return cols
}

func parseRow(row []string, cols map[string]int) (models.PriceRecord, bool) {
	field := func(key string) string {
		idx, ok := cols[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	modal, err := strconv.ParseFloat(field("modal_price"), 64)
	if err != nil {
		return models.PriceRecord{}, false
	}

	rec := models.PriceRecord{
		State:      field("state"),
		District:   field("district"),
		Market:     field("market"),
		Commodity:  field("commodity"),
		ModalPrice: modal,
	}
	rec.MinPrice, _ = strconv.ParseFloat(field("min_price"), 64)
	rec.MaxPrice, _ = strconv.ParseFloat(field("max_price"), 64)
	rec.ArrivalDate = parseArrivalDate(field("arrival_date"))
	return rec, true
}

// parseArrivalDate handles the day-first formats the export uses.
func parseArrivalDate(s string) time.Time {
	for _, layout := range []string{"02/01/2006", "02-01-2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
