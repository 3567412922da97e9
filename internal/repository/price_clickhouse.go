package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"AgriChain/internal/domain/models"
	pkgch "AgriChain/pkg/clickhouse"
	applogger "AgriChain/pkg/logger"
)

// CHPriceStore serves the mandi price table from ClickHouse, for
// deployments where the AGMARKNET feed is ingested continuously instead
// of shipped as a CSV snapshot.
type CHPriceStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

// NewCHPriceStore creates the ClickHouse-backed price store.
func NewCHPriceStore(ch *pkgch.Client, table string, l *applogger.Logger) *CHPriceStore {
	if table == "" {
		table = "commodity_prices"
	}
	return &CHPriceStore{db: ch.DB(), table: table, l: l}
}

func (s *CHPriceStore) FilterByCommodity(ctx context.Context, keywords []string) ([]models.PriceRecord, error) {
	start := time.Now()

	conds := make([]string, 0, len(keywords))
	args := make([]interface{}, 0, len(keywords))
	for _, kw := range keywords {
		conds = append(conds, "positionCaseInsensitive(commodity, ?) > 0")
		args = append(args, kw)
	}
	if len(conds) == 0 {
		return nil, nil
	}

	q := fmt.Sprintf(`
        SELECT state, district, market, commodity, arrival_date, min_price, max_price, modal_price
        FROM %s
        WHERE (%s) AND modal_price > 0
        ORDER BY arrival_date ASC
    `, s.table, strings.Join(conds, " OR "))

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		s.l.Error("clickhouse price query error",
			applogger.String("table", s.table),
			applogger.Strings("keywords", keywords),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("%w: query prices: %v", models.ErrDataUnavailable, err)
	}
	defer rows.Close()

	out := make([]models.PriceRecord, 0, 256)
	for rows.Next() {
		var rec models.PriceRecord
		if err := rows.Scan(&rec.State, &rec.District, &rec.Market, &rec.Commodity,
			&rec.ArrivalDate, &rec.MinPrice, &rec.MaxPrice, &rec.ModalPrice); err != nil {
			s.l.Error("clickhouse price scan error",
				applogger.String("table", s.table),
				applogger.Error(err),
			)
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("price rows: %w", err)
	}

	s.l.Debug("clickhouse price query ok",
		applogger.String("table", s.table),
		applogger.Int("rows", len(out)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return out, nil
}

func (s *CHPriceStore) Rows(ctx context.Context) (int, error) {
	var n int
	q := fmt.Sprintf("SELECT count() FROM %s", s.table)
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count prices: %v", models.ErrDataUnavailable, err)
	}
	return n, nil
}

// Close is a no-op; the pooled client is closed by its owner.
func (s *CHPriceStore) Close() error { return nil }
