package httpx

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/report"
)

type chartSpec struct {
	title  string
	series string
	value  func(models.MetricsRow) float64
}

var (
	chartROI = chartSpec{
		title:  "Return on Investment (ROI) by Influencer",
		series: "ROI",
		value:  func(r models.MetricsRow) float64 { return r.ROI },
	}
	chartROAS = chartSpec{
		title:  "Incremental ROAS by Influencer",
		series: "Incremental ROAS",
		value:  func(r models.MetricsRow) float64 { return r.IncrementalROAS },
	}
)

// chartHandler renders one metric as an HTML bar chart, influencers
// ordered by the charted value descending.
func chartHandler(svc *report.Service, spec chartSpec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Metrics(parseFilters(r.URL.Query()))
		if err != nil {
			writePipelineError(w, err)
			return
		}

		rows := make([]models.MetricsRow, len(res.Rows))
		copy(rows, res.Rows)
		sort.SliceStable(rows, func(i, j int) bool { return spec.value(rows[i]) > spec.value(rows[j]) })

		names := make([]string, 0, len(rows))
		data := make([]opts.BarData, 0, len(rows))
		for _, row := range rows {
			names = append(names, row.Name)
			data = append(data, opts.BarData{Value: spec.value(row)})
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{PageTitle: spec.title, Width: "1100px", Height: "600px"}),
			charts.WithTitleOpts(opts.Title{Title: spec.title, Subtitle: fmt.Sprintf("influencers=%d", len(rows))}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		bar.SetXAxis(names).AddSeries(spec.series, data)

		var buf bytes.Buffer
		if err := bar.Render(&buf); err != nil {
			http.Error(w, fmt.Sprintf("failed to render chart: %v", err), 500)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
