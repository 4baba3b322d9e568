// Package dataset loads the four campaign tables from flat CSV files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

const (
	InfluencersFile = "influencers_data.csv"
	PostsFile       = "posts_data.csv"
	TrackingFile    = "tracking_data.csv"
	PayoutsFile     = "payouts_data.csv"
)

// Load reads the four datasets from dir. Column names must match the
// fixed schema; a missing column or an unparseable numeric cell is a
// hard error, since silently dropped reference rows would skew every
// downstream metric.
func Load(dir string) (*models.Tables, error) {
	t := &models.Tables{}

	err := readCSV(filepath.Join(dir, InfluencersFile), []string{"ID", "name", "platform", "category", "follower_count", "gender", "city"}, func(row rowReader) error {
		followers, err := row.intCol("follower_count")
		if err != nil {
			return err
		}
		t.Influencers = append(t.Influencers, models.Influencer{
			ID:            row.col("ID"),
			Name:          row.col("name"),
			Platform:      row.col("platform"),
			Category:      row.col("category"),
			FollowerCount: followers,
			Gender:        row.col("gender"),
			City:          row.col("city"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, PostsFile), []string{"influencer_id", "platform", "date", "caption", "reach", "likes", "comments"}, func(row rowReader) error {
		reach, err := row.intCol("reach")
		if err != nil {
			return err
		}
		likes, err := row.intCol("likes")
		if err != nil {
			return err
		}
		comments, err := row.intCol("comments")
		if err != nil {
			return err
		}
		t.Posts = append(t.Posts, models.Post{
			InfluencerID: row.col("influencer_id"),
			Platform:     row.col("platform"),
			Date:         row.col("date"),
			Caption:      row.col("caption"),
			Reach:        reach,
			Likes:        likes,
			Comments:     comments,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, TrackingFile), []string{"influencer_id", "campaign", "product", "orders", "revenue"}, func(row rowReader) error {
		orders, err := row.intCol("orders")
		if err != nil {
			return err
		}
		revenue, err := row.floatCol("revenue")
		if err != nil {
			return err
		}
		t.Tracking = append(t.Tracking, models.TrackingEvent{
			InfluencerID: row.col("influencer_id"),
			Campaign:     row.col("campaign"),
			Product:      row.col("product"),
			Orders:       orders,
			Revenue:      revenue,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readCSV(filepath.Join(dir, PayoutsFile), []string{"influencer_id", "basis", "rate", "total_payout"}, func(row rowReader) error {
		rate, err := row.floatCol("rate")
		if err != nil {
			return err
		}
		total, err := row.floatCol("total_payout")
		if err != nil {
			return err
		}
		t.Payouts = append(t.Payouts, models.Payout{
			InfluencerID: row.col("influencer_id"),
			Basis:        row.col("basis"),
			Rate:         rate,
			TotalPayout:  total,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// rowReader resolves one CSV record by column name.
type rowReader struct {
	file   string
	line   int
	idx    map[string]int
	record []string
}

func (r rowReader) col(name string) string {
	return strings.TrimSpace(r.record[r.idx[name]])
}

func (r rowReader) intCol(name string) (int, error) {
	v, err := strconv.Atoi(r.col(name))
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q: %w", r.file, r.line, name, err)
	}
	return v, nil
}

func (r rowReader) floatCol(name string) (float64, error) {
	v, err := strconv.ParseFloat(r.col(name), 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %q: %w", r.file, r.line, name, err)
	}
	return v, nil
}

func readCSV(path string, required []string, each func(rowReader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", filepath.Base(path), err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", filepath.Base(path), col)
		}
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s line %d: %w", filepath.Base(path), line, err)
		}
		if err := each(rowReader{file: filepath.Base(path), line: line, idx: idx, record: record}); err != nil {
			return err
		}
	}
}
