package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictionResult_IsPositive(t *testing.T) {
	positive := []string{"positive", "Positive", "POS", "pos_label"}
	negative := []string{"negative", "Negative", "NEG", "neutral", ""}

	for _, s := range positive {
		assert.True(t, PredictionResult{Sentiment: s}.IsPositive(), s)
	}
	for _, s := range negative {
		assert.False(t, PredictionResult{Sentiment: s}.IsPositive(), s)
	}
}

func TestHealthStatus_String(t *testing.T) {
	assert.Equal(t, "connected", HealthConnected.String())
	assert.Equal(t, "unreachable", HealthUnreachable.String())
	assert.Equal(t, "connection_error", HealthConnectionError.String())
	assert.Equal(t, "unknown", HealthStatus(42).String())
}
