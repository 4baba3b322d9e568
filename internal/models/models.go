package models

type Influencer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Platform      string `json:"platform"`
	Category      string `json:"category"`
	FollowerCount int    `json:"follower_count"`
	Gender        string `json:"gender"`
	City          string `json:"city"`
}

type Post struct {
	InfluencerID string `json:"influencer_id"`
	Platform     string `json:"platform"`
	Date         string `json:"date"`
	Caption      string `json:"caption"`
	Reach        int    `json:"reach"`
	Likes        int    `json:"likes"`
	Comments     int    `json:"comments"`
}

type TrackingEvent struct {
	InfluencerID string  `json:"influencer_id"`
	Campaign     string  `json:"campaign"`
	Product      string  `json:"product"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
}

type Payout struct {
	InfluencerID string  `json:"influencer_id"`
	Basis        string  `json:"basis"` // per-post or per-order
	Rate         float64 `json:"rate"`
	TotalPayout  float64 `json:"total_payout"`
}

// Tables holds the four datasets loaded for a session. Treated as
// immutable after load.
type Tables struct {
	Influencers []Influencer
	Posts       []Post
	Tracking    []TrackingEvent
	Payouts     []Payout
}

// MetricsRow is derived per influencer from filtered tracking and payout
// data; it is recomputed on every filter change and never persisted.
type MetricsRow struct {
	InfluencerID       string  `json:"influencer_id"`
	Name               string  `json:"name"`
	Orders             int     `json:"orders"`
	Revenue            float64 `json:"revenue"`
	TotalPayout        float64 `json:"total_payout"`
	ROI                float64 `json:"roi"`
	IncrementalRevenue float64 `json:"incremental_revenue"`
	IncrementalROAS    float64 `json:"incremental_roas"`
}

// PatternCount is one recurring loss group on a single dimension.
type PatternCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Insights summarizes a metrics collection: per-metric extremes, the
// loss-making rows and the recurring loss patterns per dimension.
type Insights struct {
	BestROI     MetricsRow `json:"best_roi"`
	BestROAS    MetricsRow `json:"best_roas"`
	MostOrders  MetricsRow `json:"most_orders"`
	MostRevenue MetricsRow `json:"most_revenue"`

	Losses []MetricsRow `json:"losses"`

	LossPlatforms  []PatternCount `json:"loss_platforms"`
	LossCategories []PatternCount `json:"loss_categories"`
	LossProducts   []PatternCount `json:"loss_products"`

	Sentences []string `json:"sentences"`
}

// HasRecurringPattern reports whether any dimension crossed the
// recurring-loss threshold.
func (in Insights) HasRecurringPattern() bool {
	return len(in.LossPlatforms) > 0 || len(in.LossCategories) > 0 || len(in.LossProducts) > 0
}
