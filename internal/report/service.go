package report

import (
	"errors"
	"sort"

	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/store"
)

// ErrEmptyInput marks a metrics computation attempted over an empty
// filtered tracking or payout set. Callers surface it as a warning, not
// a failure.
var ErrEmptyInput = errors.New("no tracking or payout data for current filters")

// ErrNoMetrics marks insight derivation attempted over an empty metrics
// collection.
var ErrNoMetrics = errors.New("not enough data to generate insights")

type Service struct {
	cache    *store.Cache
	baseline float64 // assumed order value absent influencer marketing
}

func NewService(cache *store.Cache, baselineOrderValue float64) *Service {
	return &Service{cache: cache, baseline: baselineOrderValue}
}

func (s *Service) BaselineOrderValue() float64 { return s.baseline }

// Filtered loads the table snapshot and applies one filter selection.
func (s *Service) Filtered(f Filters) (FilteredTables, error) {
	t, err := s.cache.Tables()
	if err != nil {
		return FilteredTables{}, err
	}
	return ApplyFilters(t, f), nil
}

// MetricsResult is the derived per-influencer metrics plus a warning
// counter for rows that had to be dropped for a zero payout.
type MetricsResult struct {
	Rows              []models.MetricsRow `json:"rows"`
	SkippedZeroPayout int                 `json:"skipped_zero_payout"`
}

// Metrics runs the full pipeline for one filter selection.
func (s *Service) Metrics(f Filters) (MetricsResult, error) {
	ft, err := s.Filtered(f)
	if err != nil {
		return MetricsResult{}, err
	}
	return ComputeMetrics(ft, s.baseline)
}

type trackingSum struct {
	orders  int
	revenue float64
}

// ComputeMetrics aggregates tracking per influencer, inner-joins payout
// totals and derives ROI and incremental ROAS. Influencers present on
// only one side of the join are dropped. A zero total payout leaves both
// ratios undefined; such rows are excluded and counted rather than
// poisoning the result with non-finite values. Rows come back in
// influencer-id order so extremes and exports are deterministic.
func ComputeMetrics(ft FilteredTables, baselineOrderValue float64) (MetricsResult, error) {
	if len(ft.Tracking) == 0 || len(ft.Payouts) == 0 {
		return MetricsResult{}, ErrEmptyInput
	}

	perf := make(map[string]*trackingSum)
	for _, ev := range ft.Tracking {
		p := perf[ev.InfluencerID]
		if p == nil {
			p = &trackingSum{}
			perf[ev.InfluencerID] = p
		}
		p.orders += ev.Orders
		p.revenue += ev.Revenue
	}

	// Payouts are summed per influencer before the join; joining row by
	// row would emit duplicate metric rows when an influencer has one
	// payout record per campaign.
	payout := make(map[string]float64)
	for _, po := range ft.Payouts {
		payout[po.InfluencerID] += po.TotalPayout
	}

	names := make(map[string]string, len(ft.Influencers))
	for _, inf := range ft.Influencers {
		names[inf.ID] = inf.Name
	}

	ids := make([]string, 0, len(perf))
	for id := range perf {
		if _, ok := payout[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var res MetricsResult
	for _, id := range ids {
		p := perf[id]
		pay := payout[id]
		if pay == 0 {
			res.SkippedZeroPayout++
			continue
		}
		incremental := p.revenue - float64(p.orders)*baselineOrderValue
		res.Rows = append(res.Rows, models.MetricsRow{
			InfluencerID:       id,
			Name:               names[id], // left join: empty name keeps the row
			Orders:             p.orders,
			Revenue:            p.revenue,
			TotalPayout:        pay,
			ROI:                p.revenue / pay,
			IncrementalRevenue: incremental,
			IncrementalROAS:    incremental / pay,
		})
	}
	return res, nil
}
