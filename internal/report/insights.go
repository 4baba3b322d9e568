package report

import (
	"fmt"
	"sort"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// recurringLossMin is the count at which a loss group stops being an
// isolated incident and becomes a pattern worth reporting.
const recurringLossMin = 2

// Insights derives extremes, losses and recurring loss patterns for one
// filter selection.
func (s *Service) Insights(f Filters) (models.Insights, error) {
	t, err := s.cache.Tables()
	if err != nil {
		return models.Insights{}, err
	}
	ft := ApplyFilters(t, f)
	m, err := ComputeMetrics(ft, s.baseline)
	if err != nil {
		return models.Insights{}, err
	}
	return DeriveInsights(m.Rows, ft, t.Tracking)
}

// DeriveInsights scans the metrics collection for per-metric extremes
// and loss-making rows, then aggregates losses by platform, category and
// product. Ties on an extreme go to the first row in input order.
// Product counts run over the full tracking table, not the filtered one:
// every tracking event of a loss influencer signals against its product,
// even when the current campaign or product filter hides that event.
func DeriveInsights(rows []models.MetricsRow, ft FilteredTables, tracking []models.TrackingEvent) (models.Insights, error) {
	if len(rows) == 0 {
		return models.Insights{}, ErrNoMetrics
	}

	in := models.Insights{
		BestROI:     rows[0],
		BestROAS:    rows[0],
		MostOrders:  rows[0],
		MostRevenue: rows[0],
	}
	for _, r := range rows[1:] {
		if r.ROI > in.BestROI.ROI {
			in.BestROI = r
		}
		if r.IncrementalROAS > in.BestROAS.IncrementalROAS {
			in.BestROAS = r
		}
		if r.Orders > in.MostOrders.Orders {
			in.MostOrders = r
		}
		if r.Revenue > in.MostRevenue.Revenue {
			in.MostRevenue = r
		}
	}

	lossIDs := make(map[string]struct{})
	for _, r := range rows {
		if r.ROI < 1 || r.IncrementalROAS < 0 {
			in.Losses = append(in.Losses, r)
			lossIDs[r.InfluencerID] = struct{}{}
		}
	}

	byID := make(map[string]models.Influencer, len(ft.Influencers))
	for _, inf := range ft.Influencers {
		byID[inf.ID] = inf
	}

	platforms := make(map[string]int)
	categories := make(map[string]int)
	for _, r := range in.Losses {
		if inf, ok := byID[r.InfluencerID]; ok {
			platforms[inf.Platform]++
			categories[inf.Category]++
		}
	}
	// Products count loss-linked tracking events, not loss influencers:
	// one influencer losing across three campaigns of a product is three
	// signals against that product.
	products := make(map[string]int)
	for _, ev := range tracking {
		if _, ok := lossIDs[ev.InfluencerID]; ok {
			products[ev.Product]++
		}
	}

	in.LossPlatforms = recurring(platforms)
	in.LossCategories = recurring(categories)
	in.LossProducts = recurring(products)

	in.Sentences = sentences(in, byID)
	return in, nil
}

// recurring keeps only groups at or above the threshold, ordered by
// count descending with value as tie-break for stable output.
func recurring(counts map[string]int) []models.PatternCount {
	var out []models.PatternCount
	for v, n := range counts {
		if n >= recurringLossMin {
			out = append(out, models.PatternCount{Value: v, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func sentences(in models.Insights, byID map[string]models.Influencer) []string {
	out := []string{
		fmt.Sprintf("%s delivered the highest ROI of %.2f on the %s platform.",
			in.BestROI.Name, in.BestROI.ROI, byID[in.BestROI.InfluencerID].Platform),
		fmt.Sprintf("%s had the best incremental ROAS of %.2f, indicating high campaign impact.",
			in.BestROAS.Name, in.BestROAS.IncrementalROAS),
		fmt.Sprintf("%s drove the most orders with %d total orders.",
			in.MostOrders.Name, in.MostOrders.Orders),
		fmt.Sprintf("%s generated the highest revenue of %.2f.",
			in.MostRevenue.Name, in.MostRevenue.Revenue),
	}

	if len(in.Losses) == 0 {
		out = append(out, "All influencer campaigns are currently profitable based on ROI and incremental ROAS.")
		return out
	}
	out = append(out, fmt.Sprintf("%d influencer(s) are incurring losses.", len(in.Losses)))

	for _, p := range in.LossPlatforms {
		out = append(out, fmt.Sprintf("%s had %d loss-making influencers.", p.Value, p.Count))
	}
	for _, c := range in.LossCategories {
		out = append(out, fmt.Sprintf("%s category influencers underperformed in %d campaigns.", c.Value, c.Count))
	}
	for _, p := range in.LossProducts {
		out = append(out, fmt.Sprintf("%s was linked to %d low-ROI campaigns.", p.Value, p.Count))
	}
	if !in.HasRecurringPattern() {
		out = append(out, "No recurring loss patterns detected. Losses are likely isolated.")
	}
	return out
}
