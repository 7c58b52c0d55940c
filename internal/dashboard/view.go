package dashboard

import (
	"fmt"

	"github.com/spacesedan/sentiview/internal/models"
)

const (
	BADGE_SUCCESS = "success"
	BADGE_WARNING = "warning"
	BADGE_ERROR   = "error"
	BADGE_INFO    = "info"

	COLOR_POSITIVE = "green"
	COLOR_NEGATIVE = "red"

	CHART_HEIGHT = 240
)

type Badge struct {
	Kind string
	Text string
}

type Bar struct {
	Label string
	Color string
	Value float64
}

// Height is the bar height in chart pixels. Values are clamped to [0, 1].
func (b Bar) Height() float64 {
	v := b.Value
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v * CHART_HEIGHT
}

// Y is the top edge of the bar inside the chart area.
func (b Bar) Y() float64 {
	return CHART_HEIGHT - b.Height()
}

type PredictionView struct {
	Positive bool
	Badge    Badge
	Bars     []Bar
}

type TokenView struct {
	Word     string
	Weight   string
	Color    string
	Positive bool
}

type ExplanationView struct {
	HTML   string
	Tokens []TokenView
}

// Page is everything one render of the dashboard needs.
type Page struct {
	APIURL    string
	LocalMode bool
	Health    Badge

	Text         string
	CharCount    int
	CounterColor string
	TextValid    bool
	MaxChars     int

	Examples []string

	Prediction  *PredictionView
	Explanation *ExplanationView
	Notice      *Badge
}

func NewPage(apiURL string, localMode bool, health models.HealthStatus, text string) Page {
	n := CharCount(text)
	return Page{
		APIURL:       apiURL,
		LocalMode:    localMode,
		Health:       HealthBadge(health),
		Text:         text,
		CharCount:    n,
		CounterColor: CounterColor(n),
		TextValid:    TextValid(n),
		MaxChars:     MAX_CHARS,
		Examples:     Examples,
	}
}

func HealthBadge(status models.HealthStatus) Badge {
	switch status {
	case models.HealthConnected:
		return Badge{Kind: BADGE_SUCCESS, Text: "✅ API connected"}
	case models.HealthUnreachable:
		return Badge{Kind: BADGE_WARNING, Text: "⚠️ API unreachable"}
	default:
		return Badge{Kind: BADGE_ERROR, Text: "❌ Cannot connect to the API. Check that it is running."}
	}
}

func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}

func NewPredictionView(res models.PredictionResult) *PredictionView {
	v := &PredictionView{
		Positive: res.IsPositive(),
		Bars: []Bar{
			{Label: "Negative", Color: COLOR_NEGATIVE, Value: res.ProbabilityNegative},
			{Label: "Positive", Color: COLOR_POSITIVE, Value: res.ProbabilityPositive},
		},
	}

	if v.Positive {
		v.Badge = Badge{Kind: BADGE_SUCCESS, Text: fmt.Sprintf("😊 POSITIVE (%s)", FormatConfidence(res.Confidence))}
	} else {
		v.Badge = Badge{Kind: BADGE_ERROR, Text: fmt.Sprintf("😞 NEGATIVE (%s)", FormatConfidence(res.Confidence))}
	}
	return v
}

func NewExplanationView(res models.ExplanationResult) *ExplanationView {
	v := &ExplanationView{
		HTML:   res.HTMLExplanation,
		Tokens: make([]TokenView, 0, len(res.Explanation)),
	}
	for _, tw := range res.Explanation {
		positive := tw.Weight > 0
		color := COLOR_NEGATIVE
		if positive {
			color = COLOR_POSITIVE
		}
		v.Tokens = append(v.Tokens, TokenView{
			Word:     tw.Word,
			Weight:   fmt.Sprintf("%.3f", tw.Weight),
			Color:    color,
			Positive: positive,
		})
	}
	return v
}
