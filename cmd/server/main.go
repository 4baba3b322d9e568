package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AngelCh415/ROI_GO/internal/config"
	"github.com/AngelCh415/ROI_GO/internal/dataset"
	"github.com/AngelCh415/ROI_GO/internal/httpx"
	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/report"
	"github.com/AngelCh415/ROI_GO/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	cache := store.NewCache(func() (*models.Tables, error) { return dataset.Load(cfg.DataDir) })
	svc := report.NewService(cache, cfg.BaselineOrderValue)

	r := httpx.NewRouter(logger, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.String("data_dir", cfg.DataDir))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
