package monitoring

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentiview/internal/models"
)

type HealthChecker interface {
	Health(ctx context.Context) (int, error)
}

// ProbeAPI runs one health check against the sentiment API. It is called on
// every page render and its result is never cached.
func ProbeAPI(ctx context.Context, checker HealthChecker) models.HealthStatus {
	code, err := checker.Health(ctx)
	if err != nil {
		slog.Warn("[HealthCheck] Sentiment API cannot be reached",
			slog.String("error", err.Error()))
		return models.HealthConnectionError
	}
	if code != http.StatusOK {
		slog.Warn("[HealthCheck] Sentiment API is unhealthy",
			slog.Int("status", code))
		return models.HealthUnreachable
	}
	return models.HealthConnected
}
