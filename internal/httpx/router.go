package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/ROI_GO/internal/report"
	"github.com/AngelCh415/ROI_GO/internal/utils"
)

func NewRouter(log *slog.Logger, svc *report.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Instrument)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Get("/tables/{table}", func(w http.ResponseWriter, r *http.Request) {
		ft, err := svc.Filtered(parseFilters(r.URL.Query()))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		limit := atoiDef(r.URL.Query().Get("limit"), 100)
		offset := atoiDef(r.URL.Query().Get("offset"), 0)
		switch chi.URLParam(r, "table") {
		case "influencers":
			writeJSON(w, paginate(ft.Influencers, limit, offset))
		case "posts":
			writeJSON(w, paginate(ft.Posts, limit, offset))
		case "tracking":
			writeJSON(w, paginate(ft.Tracking, limit, offset))
		case "payouts":
			writeJSON(w, paginate(ft.Payouts, limit, offset))
		default:
			http.Error(w, "unknown table (want influencers, posts, tracking or payouts)", 404)
		}
	})

	mux.Get("/report/metrics", func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Metrics(parseFilters(r.URL.Query()))
		if err != nil {
			writePipelineError(w, err)
			return
		}
		writeJSON(w, res)
	})

	mux.Get("/report/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		by, err := report.ParseRankField(r.URL.Query().Get("rank_by"))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		res, err := svc.Metrics(parseFilters(r.URL.Query()))
		if err != nil {
			writePipelineError(w, err)
			return
		}
		writeJSON(w, report.Leaderboard(res.Rows, by))
	})

	mux.Get("/report/leaderboard.csv", func(w http.ResponseWriter, r *http.Request) {
		by, err := report.ParseRankField(r.URL.Query().Get("rank_by"))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		res, err := svc.Metrics(parseFilters(r.URL.Query()))
		if err != nil {
			writePipelineError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="top_influencer_leaderboard.csv"`)
		if err := report.WriteLeaderboardCSV(w, report.Leaderboard(res.Rows, by)); err != nil {
			log.Error("write leaderboard csv", slog.String("err", err.Error()))
		}
	})

	mux.Get("/report/insights", func(w http.ResponseWriter, r *http.Request) {
		in, err := svc.Insights(parseFilters(r.URL.Query()))
		if err != nil {
			writePipelineError(w, err)
			return
		}
		writeJSON(w, in)
	})

	mux.Get("/charts/roi", chartHandler(svc, chartROI))
	mux.Get("/charts/roas", chartHandler(svc, chartROAS))

	return mux
}

// parseFilters maps query params to filter selections. An absent param
// means "all observed values"; a present param is a closed set of its
// comma-separated values, so platform= (empty) matches nothing.
func parseFilters(q url.Values) report.Filters {
	return report.Filters{
		Platforms:  selection(q, "platform"),
		Categories: selection(q, "category"),
		Campaigns:  selection(q, "campaign"),
		Products:   selection(q, "product"),
		Names:      selection(q, "influencer"),
	}
}

func selection(q url.Values, key string) report.Selection {
	if !q.Has(key) {
		return nil
	}
	return report.NewSelection(splitCSV(q.Get(key))...)
}

// writePipelineError converts stage errors into user-visible statuses:
// empty inputs and empty metrics are warnings with a 200, not failures,
// so the rest of the dashboard keeps rendering.
func writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrEmptyInput):
		writeJSON(w, map[string]string{"status": "no_data", "warning": err.Error()})
	case errors.Is(err, report.ErrNoMetrics):
		writeJSON(w, map[string]string{"status": "insufficient_data", "message": err.Error()})
	default:
		http.Error(w, err.Error(), 500)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
