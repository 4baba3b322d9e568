package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// RankField selects the leaderboard ordering metric.
type RankField string

const (
	RankROI     RankField = "roi"
	RankIncROAS RankField = "inc_roas"
)

func ParseRankField(s string) (RankField, error) {
	switch RankField(s) {
	case RankROI, RankIncROAS:
		return RankField(s), nil
	case "":
		return RankROI, nil
	default:
		return "", fmt.Errorf("unknown rank field %q (want %s or %s)", s, RankROI, RankIncROAS)
	}
}

// LeaderboardEntry is one ranked row, rank starting at 1.
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	models.MetricsRow
}

// Leaderboard sorts the metrics rows descending by the chosen field.
// Influencer id breaks ties so identical inputs always rank identically.
func Leaderboard(rows []models.MetricsRow, by RankField) []LeaderboardEntry {
	sorted := make([]models.MetricsRow, len(rows))
	copy(sorted, rows)
	key := func(r models.MetricsRow) float64 {
		if by == RankIncROAS {
			return r.IncrementalROAS
		}
		return r.ROI
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if key(sorted[i]) != key(sorted[j]) {
			return key(sorted[i]) > key(sorted[j])
		}
		return sorted[i].InfluencerID < sorted[j].InfluencerID
	})

	out := make([]LeaderboardEntry, len(sorted))
	for i, r := range sorted {
		out[i] = LeaderboardEntry{Rank: i + 1, MetricsRow: r}
	}
	return out
}

// WriteLeaderboardCSV serializes the leaderboard with display column
// names. Money and ratio values are rounded to two places here, at the
// display boundary only; the underlying rows stay exact.
func WriteLeaderboardCSV(w io.Writer, entries []LeaderboardEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Influencer", "Orders", "Revenue", "Payout", "ROI", "Inc. ROAS"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Name,
			strconv.Itoa(e.Orders),
			fmt.Sprintf("%.2f", e.Revenue),
			fmt.Sprintf("%.2f", e.TotalPayout),
			fmt.Sprintf("%.2f", e.ROI),
			fmt.Sprintf("%.2f", e.IncrementalROAS),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
