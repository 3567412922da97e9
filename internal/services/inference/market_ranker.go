package inference

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/domain/repository"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
	"AgriChain/pkg/util"
)

// MarketRanker ranks sell destinations by net profit using the mandi price
// dataset, degrading to static benchmark markets when the dataset has no
// usable rows. Also hosts the seasonal price-forecast helper.
type MarketRanker struct {
	store             repository.PriceStore
	stateMatchMinRows int
	log               *logger.Logger
}

// NewMarketRanker creates the market ranking component.
func NewMarketRanker(store repository.PriceStore, stateMatchMinRows int, log *logger.Logger) *MarketRanker {
	if stateMatchMinRows < 1 {
		stateMatchMinRows = 2
	}
	return &MarketRanker{
		store:             store,
		stateMatchMinRows: stateMatchMinRows,
		log:               log,
	}
}

// Rank returns up to three markets ordered by net profit, best first.
func (r *MarketRanker) Rank(ctx context.Context, crop, state, district string, landSize float64) ([]models.MarketOption, error) {
	yieldKg := landSize * knowledge.YieldKgPerAcre(crop)

	records, err := r.store.FilterByCommodity(ctx, knowledge.CommodityKeywords(crop))
	if err != nil {
		// Degrade to benchmarks rather than failing the whole advisory.
		r.log.Warn("price store unavailable, using benchmark markets",
			logger.String("crop", crop), logger.Error(err))
		return r.benchmarkOptions(crop, district, yieldKg), nil
	}

	working := r.filterByState(records, state)
	if len(working) == 0 {
		r.log.Warn("no price rows for crop, using benchmark markets", logger.String("crop", crop))
		return r.benchmarkOptions(crop, district, yieldKg), nil
	}

	// Group by market on average modal price, keep the five best priced.
	type marketAgg struct {
		name string
		avg  float64
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range working {
		sums[rec.Market] += rec.ModalPrice
		counts[rec.Market]++
	}
	aggs := make([]marketAgg, 0, len(sums))
	for name, sum := range sums {
		aggs = append(aggs, marketAgg{name: name, avg: sum / float64(counts[name])})
	}
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].avg != aggs[j].avg {
			return aggs[i].avg > aggs[j].avg
		}
		return aggs[i].name < aggs[j].name
	})
	if len(aggs) > 5 {
		aggs = aggs[:5]
	}

	options := make([]models.MarketOption, 0, len(aggs))
	for _, agg := range aggs {
		// Dataset prices are ₹/quintal; values already per kg stay as-is.
		pricePerKg := util.Round2(agg.avg / 100)
		if pricePerKg < 0.5 {
			pricePerKg = util.Round2(agg.avg)
		}

		transport := r.transportCostPerKg(district, agg.name)
		netProfit := math.Round((pricePerKg - transport) * yieldKg)

		options = append(options, models.MarketOption{
			Name:             agg.name,
			PricePerKg:       pricePerKg,
			PriceDisplay:     util.FormatPerKg(pricePerKg),
			TransportCost:    transport,
			TransportDisplay: util.FormatPerKg(transport),
			NetProfit:        netProfit,
			NetProfitDisplay: util.FormatINR(netProfit),
			DistanceKm:       r.marketDistanceKm(district, agg.name),
			Trend:            r.priceTrend(records, agg.name),
		})
	}

	sort.SliceStable(options, func(i, j int) bool { return options[i].NetProfit > options[j].NetProfit })
	if len(options) > 3 {
		options = options[:3]
	}
	finalizeRanking(options)
	return options, nil
}

// filterByState prefers in-state rows when enough exist, otherwise keeps
// the full crop slice.
func (r *MarketRanker) filterByState(records []models.PriceRecord, state string) []models.PriceRecord {
	stateClean := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(state)), "_", " ")
	if len(stateClean) > 6 {
		stateClean = stateClean[:6]
	}

	matched := make([]models.PriceRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.State), stateClean) {
			matched = append(matched, rec)
		}
	}
	if len(matched) >= r.stateMatchMinRows {
		return matched
	}
	return records
}

// transportCostPerKg estimates haulage cost by matching the market against
// the district distance table, median distance when nothing matches.
func (r *MarketRanker) transportCostPerKg(district, market string) float64 {
	distances := knowledge.DistancesFor(district)
	marketLower := strings.ToLower(market)

	keys := make([]string, 0, len(distances))
	for k := range distances {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		keyLower := strings.ToLower(key)
		if strings.Contains(marketLower, keyLower) || strings.Contains(keyLower, marketLower) {
			return util.Round2(knowledge.TransportRatePerKm * distances[key] / 100)
		}
	}
	return util.Round2(knowledge.TransportRatePerKm * knowledge.MedianDistanceKm(district) / 100)
}

const unknownMarketDistanceKm = 80.0

func (r *MarketRanker) marketDistanceKm(district, market string) float64 {
	if km, ok := knowledge.DistancesFor(district)[market]; ok {
		return km
	}
	return unknownMarketDistanceKm
}

// priceTrend compares the mean of the five most recent modal prices with
// the mean of the remainder for rows matching the market name prefix.
func (r *MarketRanker) priceTrend(records []models.PriceRecord, market string) string {
	prefix := strings.ToLower(market)
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}

	matched := make([]models.PriceRecord, 0)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Market), prefix) {
			matched = append(matched, rec)
		}
	}
	if len(matched) < 2 {
		return "Insufficient data for trend"
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ArrivalDate.Before(matched[j].ArrivalDate) })

	prices := make([]float64, len(matched))
	for i, rec := range matched {
		prices[i] = rec.ModalPrice
	}

	tail := prices
	if len(prices) > 5 {
		tail = prices[len(prices)-5:]
	}
	head := prices[:max(1, len(prices)-5)]

	recent, _ := stats.Mean(tail)
	older, _ := stats.Mean(head)
	if older == 0 {
		return "Stable"
	}

	changePct := (recent - older) / older * 100
	sign := ""
	if changePct > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%% recent trend", sign, changePct)
}

// benchmarkOptions is the designed degradation path: known mandi benchmark
// prices per crop, ranked like live data.
func (r *MarketRanker) benchmarkOptions(crop, district string, yieldKg float64) []models.MarketOption {
	benchmarks := knowledge.FallbackMarketsFor(crop)

	options := make([]models.MarketOption, 0, len(benchmarks))
	for _, b := range benchmarks {
		netProfit := math.Round((b.PricePerKg - b.TransportKg) * yieldKg)
		options = append(options, models.MarketOption{
			Name:             b.Market,
			PricePerKg:       b.PricePerKg,
			PriceDisplay:     util.FormatPerKg(b.PricePerKg),
			TransportCost:    b.TransportKg,
			TransportDisplay: util.FormatPerKg(b.TransportKg),
			NetProfit:        netProfit,
			NetProfitDisplay: util.FormatINR(netProfit),
			DistanceKm:       util.Round2(b.TransportKg / knowledge.TransportRatePerKm * 100),
		})
	}

	sort.SliceStable(options, func(i, j int) bool { return options[i].NetProfit > options[j].NetProfit })
	if len(options) > 3 {
		options = options[:3]
	}
	finalizeRanking(options)
	for i := range options {
		if options[i].IsBest {
			options[i].Trend = "Seasonal demand rising"
		} else {
			options[i].Trend = "Stable"
		}
	}
	return options
}

// finalizeRanking marks the best option and sizes the comparison bars.
// Options must already be sorted by net profit descending.
func finalizeRanking(options []models.MarketOption) {
	if len(options) == 0 {
		return
	}
	best := options[0].NetProfit
	for i := range options {
		options[i].IsBest = i == 0
		if best <= 0 {
			options[i].BarWidth = 40
			continue
		}
		options[i].BarWidth = int(math.Min(100, options[i].NetProfit/best*80+20))
	}
}

// ForecastPrice projects a current price to the harvest month using the
// crop's seasonal multiplier table.
func (r *MarketRanker) ForecastPrice(crop string, currentPrice float64, harvestDays int, from time.Time) float64 {
	month := int(from.AddDate(0, 0, harvestDays).Month())
	return util.Round2(currentPrice * knowledge.SeasonalMultiplier(crop, month))
}
