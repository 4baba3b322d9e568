// Package report implements the filter → aggregate → derive pipeline
// over the loaded campaign tables. Everything here is a pure function of
// its inputs so concurrent sessions can share one table snapshot.
package report

import (
	"github.com/AngelCh415/ROI_GO/internal/models"
)

// Selection is one filter dimension. A nil Selection allows every value;
// an empty non-nil Selection allows none (closed-world multi-select: an
// empty pick list means no match, not "all").
type Selection map[string]struct{}

func NewSelection(values ...string) Selection {
	s := make(Selection, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Selection) Allows(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}

// Filters carries the five filter dimensions.
type Filters struct {
	Platforms  Selection
	Categories Selection
	Campaigns  Selection
	Products   Selection
	Names      Selection
}

// FilteredTables is the narrowed view of the four tables under one
// filter selection.
type FilteredTables struct {
	Influencers []models.Influencer
	Posts       []models.Post
	Tracking    []models.TrackingEvent
	Payouts     []models.Payout
}

// ApplyFilters narrows each table. Influencers filter on their own
// columns; the surviving id set then gates tracking, posts and payouts,
// so filtered tracking rows always reference a filtered influencer.
func ApplyFilters(t *models.Tables, f Filters) FilteredTables {
	var ft FilteredTables

	ids := make(map[string]struct{})
	for _, inf := range t.Influencers {
		if f.Platforms.Allows(inf.Platform) && f.Categories.Allows(inf.Category) && f.Names.Allows(inf.Name) {
			ft.Influencers = append(ft.Influencers, inf)
			ids[inf.ID] = struct{}{}
		}
	}

	for _, ev := range t.Tracking {
		if _, ok := ids[ev.InfluencerID]; !ok {
			continue
		}
		if f.Campaigns.Allows(ev.Campaign) && f.Products.Allows(ev.Product) {
			ft.Tracking = append(ft.Tracking, ev)
		}
	}

	for _, p := range t.Posts {
		if _, ok := ids[p.InfluencerID]; ok {
			ft.Posts = append(ft.Posts, p)
		}
	}

	for _, po := range t.Payouts {
		if _, ok := ids[po.InfluencerID]; ok {
			ft.Payouts = append(ft.Payouts, po)
		}
	}

	return ft
}
