package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/report"
	"github.com/AngelCh415/ROI_GO/internal/store"
)

func testTables() *models.Tables {
	return &models.Tables{
		Influencers: []models.Influencer{
			{ID: "1", Name: "Aarav Mehta", Platform: "Instagram", Category: "Fitness"},
			{ID: "2", Name: "Bela Rao", Platform: "YouTube", Category: "Wellness"},
		},
		Posts: []models.Post{
			{InfluencerID: "1", Platform: "Instagram", Date: "2025-06-01", Caption: "leg day"},
		},
		Tracking: []models.TrackingEvent{
			{InfluencerID: "1", Campaign: "SummerBlast", Product: "Whey Protein", Orders: 10, Revenue: 5000},
			{InfluencerID: "2", Campaign: "SummerBlast", Product: "Multivitamin", Orders: 5, Revenue: 1200},
		},
		Payouts: []models.Payout{
			{InfluencerID: "1", Basis: "per-order", Rate: 100, TotalPayout: 1000},
			{InfluencerID: "2", Basis: "per-post", Rate: 500, TotalPayout: 1000},
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cache := store.NewCache(func() (*models.Tables, error) { return testTables(), nil })
	svc := report.NewService(cache, 300)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(log, svc))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, _ = get(t, srv.URL+"/readyz")
	assert.Equal(t, 200, resp.StatusCode)
}

func TestTableViews(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/tables/influencers")
	require.Equal(t, 200, resp.StatusCode)
	var influencers []models.Influencer
	require.NoError(t, json.Unmarshal(body, &influencers))
	assert.Len(t, influencers, 2)

	// platform filter narrows influencers and propagates to tracking
	resp, body = get(t, srv.URL+"/tables/tracking?platform=YouTube")
	require.Equal(t, 200, resp.StatusCode)
	var tracking []models.TrackingEvent
	require.NoError(t, json.Unmarshal(body, &tracking))
	require.Len(t, tracking, 1)
	assert.Equal(t, "2", tracking[0].InfluencerID)

	// present-but-empty param is a closed empty selection
	resp, body = get(t, srv.URL+"/tables/influencers?platform=")
	require.Equal(t, 200, resp.StatusCode)
	influencers = nil
	require.NoError(t, json.Unmarshal(body, &influencers))
	assert.Empty(t, influencers)

	resp, _ = get(t, srv.URL+"/tables/nope")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestTablePagination(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/tables/influencers?limit=1&offset=1")
	var influencers []models.Influencer
	require.NoError(t, json.Unmarshal(body, &influencers))
	require.Len(t, influencers, 1)
	assert.Equal(t, "2", influencers[0].ID)
}

func TestReportMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/report/metrics")
	require.Equal(t, 200, resp.StatusCode)
	var res report.MetricsResult
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Rows, 2)
	assert.Equal(t, 5.0, res.Rows[0].ROI)
	assert.Equal(t, -0.3, res.Rows[1].IncrementalROAS)
}

func TestReportMetricsEmptyFiltersWarn(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/report/metrics?campaign=")
	require.Equal(t, 200, resp.StatusCode)
	var status map[string]string
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "no_data", status["status"])
	assert.NotEmpty(t, status["warning"])
}

func TestLeaderboardEndpoints(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/report/leaderboard?rank_by=inc_roas")
	var entries []report.LeaderboardEntry
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Aarav Mehta", entries[0].Name)

	resp, _ := get(t, srv.URL+"/report/leaderboard?rank_by=followers")
	assert.Equal(t, 400, resp.StatusCode)

	resp, body = get(t, srv.URL+"/report/leaderboard.csv")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "top_influencer_leaderboard.csv")
	assert.Contains(t, string(body), "Influencer,Orders,Revenue,Payout,ROI,Inc. ROAS")
	assert.Contains(t, string(body), "Aarav Mehta,10,5000.00,1000.00,5.00,2.00")
}

func TestInsightsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/report/insights")
	require.Equal(t, 200, resp.StatusCode)
	var in models.Insights
	require.NoError(t, json.Unmarshal(body, &in))
	assert.Equal(t, "Aarav Mehta", in.BestROI.Name)
	require.Len(t, in.Losses, 1)
	assert.Equal(t, "Bela Rao", in.Losses[0].Name)
	assert.NotEmpty(t, in.Sentences)
}

func TestChartEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/charts/roi", "/charts/roas"} {
		resp, body := get(t, srv.URL+path)
		require.Equal(t, 200, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
		assert.Contains(t, string(body), "echarts", path)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// generate instrumented requests first
	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/tables/influencers")
	get(t, srv.URL+"/tables/posts")

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), "roi_http_requests_total")
	// table requests share the route pattern label instead of minting one
	// series per concrete path
	assert.Contains(t, string(body), `path="/tables/{table}"`)
	assert.NotContains(t, string(body), `path="/tables/influencers"`)
}
