package models

import "strings"

// TextRequest is the body sent to /predict and /explain.
type TextRequest struct {
	Text string `json:"text"`
}

type PredictionResult struct {
	Sentiment           string  `json:"sentiment"`
	Confidence          float64 `json:"confidence"`
	ProbabilityPositive float64 `json:"probability_positive"`
	ProbabilityNegative float64 `json:"probability_negative"`
}

// IsPositive matches the label by a case-insensitive "pos" prefix; anything
// else counts as negative.
func (p PredictionResult) IsPositive() bool {
	return strings.HasPrefix(strings.ToLower(p.Sentiment), "pos")
}

type (
	ExplanationResult struct {
		HTMLExplanation string        `json:"html_explanation"`
		Explanation     []TokenWeight `json:"explanation"`
	}
	TokenWeight struct {
		Word   string  `json:"word"`
		Weight float64 `json:"weight"`
	}
)

type HealthStatus int

const (
	HealthConnected HealthStatus = iota
	HealthUnreachable
	HealthConnectionError
)

func (s HealthStatus) String() string {
	switch s {
	case HealthConnected:
		return "connected"
	case HealthUnreachable:
		return "unreachable"
	case HealthConnectionError:
		return "connection_error"
	default:
		return "unknown"
	}
}
