package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DEFAULT_API_URL        = "http://127.0.0.1:8000"
	DEFAULT_DASHBOARD_ADDR = ":8501"
	DEFAULT_MOCK_API_ADDR  = ":8000"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	APIURL        string
	DashboardAddr string
	MockAPIAddr   string
	// APITimeout of zero keeps the http.Client default of no timeout.
	APITimeout time.Duration
	LogLevel   slog.Level
}

func Load() (Config, error) {
	cfg := Config{
		APIURL:        getEnv("API_URL", DEFAULT_API_URL),
		DashboardAddr: getEnv("DASHBOARD_ADDR", DEFAULT_DASHBOARD_ADDR),
		MockAPIAddr:   getEnv("MOCK_API_ADDR", DEFAULT_MOCK_API_ADDR),
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid API_URL %q", cfg.APIURL)
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid API_TIMEOUT %q", raw)
		}
		cfg.APITimeout = d
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// IsLocal reports whether the API URL points at a loopback host.
func (c Config) IsLocal() bool {
	return IsLoopbackURL(c.APIURL)
}

func IsLoopbackURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
