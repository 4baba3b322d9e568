package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	DataDir            string
	Port               string
	BaselineOrderValue float64
	LogLevel           slog.Level
}

func FromEnv() Config {
	baseline := 300.0
	if v := os.Getenv("BASELINE_ORDER_VALUE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			baseline = f
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		DataDir:            envOr("DATA_DIR", "./data"),
		Port:               envOr("PORT", "8080"),
		BaselineOrderValue: baseline,
		LogLevel:           lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
