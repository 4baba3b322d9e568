package report

import (
	"github.com/AngelCh415/ROI_GO/internal/models"
)

// testTables is a small campaign dataset exercising every join edge:
// split payouts (id 1), a profitable outlier (id 5), four loss-makers
// (ids 2, 3, 4, 7), a zero payout (id 8) and a payout with no tracking
// (id 6).
func testTables() *models.Tables {
	return &models.Tables{
		Influencers: []models.Influencer{
			{ID: "1", Name: "Aarav Mehta", Platform: "Instagram", Category: "Fitness", FollowerCount: 120000, Gender: "M", City: "Mumbai"},
			{ID: "2", Name: "Bela Rao", Platform: "YouTube", Category: "Wellness", FollowerCount: 80000, Gender: "F", City: "Delhi"},
			{ID: "3", Name: "Chirag Sen", Platform: "Instagram", Category: "Fitness", FollowerCount: 45000, Gender: "M", City: "Pune"},
			{ID: "4", Name: "Disha Pillai", Platform: "Instagram", Category: "Beauty", FollowerCount: 95000, Gender: "F", City: "Chennai"},
			{ID: "5", Name: "Esha Verma", Platform: "YouTube", Category: "Wellness", FollowerCount: 300000, Gender: "F", City: "Bengaluru"},
			{ID: "6", Name: "Farid Khan", Platform: "Twitter", Category: "Fitness", FollowerCount: 20000, Gender: "M", City: "Hyderabad"},
			{ID: "7", Name: "Gauri Nair", Platform: "Instagram", Category: "Wellness", FollowerCount: 60000, Gender: "F", City: "Kochi"},
			{ID: "8", Name: "Hema Joshi", Platform: "Instagram", Category: "Fitness", FollowerCount: 15000, Gender: "F", City: "Jaipur"},
		},
		Posts: []models.Post{
			{InfluencerID: "1", Platform: "Instagram", Date: "2025-06-01", Caption: "leg day", Reach: 40000, Likes: 3200, Comments: 110},
			{InfluencerID: "2", Platform: "YouTube", Date: "2025-06-03", Caption: "morning routine", Reach: 25000, Likes: 1800, Comments: 240},
			{InfluencerID: "5", Platform: "YouTube", Date: "2025-06-05", Caption: "supplement review", Reach: 90000, Likes: 7100, Comments: 530},
		},
		Tracking: []models.TrackingEvent{
			{InfluencerID: "1", Campaign: "SummerBlast", Product: "Whey Protein", Orders: 6, Revenue: 3000},
			{InfluencerID: "1", Campaign: "SummerBlast", Product: "Whey Protein", Orders: 4, Revenue: 2000},
			{InfluencerID: "2", Campaign: "SummerBlast", Product: "Multivitamin", Orders: 5, Revenue: 1200},
			{InfluencerID: "3", Campaign: "WinterGlow", Product: "Whey Protein", Orders: 2, Revenue: 400},
			{InfluencerID: "4", Campaign: "WinterGlow", Product: "Omega Oil", Orders: 1, Revenue: 100},
			{InfluencerID: "5", Campaign: "SummerBlast", Product: "Omega Oil", Orders: 20, Revenue: 9000},
			{InfluencerID: "7", Campaign: "WinterGlow", Product: "Multivitamin", Orders: 1, Revenue: 100},
			{InfluencerID: "8", Campaign: "SummerBlast", Product: "Whey Protein", Orders: 3, Revenue: 900},
		},
		Payouts: []models.Payout{
			{InfluencerID: "1", Basis: "per-order", Rate: 60, TotalPayout: 600},
			{InfluencerID: "1", Basis: "per-order", Rate: 40, TotalPayout: 400},
			{InfluencerID: "2", Basis: "per-post", Rate: 500, TotalPayout: 1000},
			{InfluencerID: "3", Basis: "per-post", Rate: 500, TotalPayout: 1000},
			{InfluencerID: "4", Basis: "per-order", Rate: 500, TotalPayout: 500},
			{InfluencerID: "5", Basis: "per-order", Rate: 50, TotalPayout: 1000},
			{InfluencerID: "6", Basis: "per-post", Rate: 700, TotalPayout: 700},
			{InfluencerID: "7", Basis: "per-post", Rate: 400, TotalPayout: 400},
			{InfluencerID: "8", Basis: "per-post", Rate: 0, TotalPayout: 0},
		},
	}
}
