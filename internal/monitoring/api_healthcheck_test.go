package monitoring

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/sentiview/internal/models"
)

type stubChecker struct {
	code int
	err  error
}

func (s stubChecker) Health(ctx context.Context) (int, error) {
	return s.code, s.err
}

func TestProbeAPI(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, models.HealthConnected, ProbeAPI(ctx, stubChecker{code: http.StatusOK}))
	assert.Equal(t, models.HealthUnreachable, ProbeAPI(ctx, stubChecker{code: http.StatusBadGateway}))
	assert.Equal(t, models.HealthUnreachable, ProbeAPI(ctx, stubChecker{code: http.StatusNoContent}))
	assert.Equal(t, models.HealthConnectionError, ProbeAPI(ctx, stubChecker{err: errors.New("connection refused")}))
}
