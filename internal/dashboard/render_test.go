package dashboard

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiview/internal/models"
)

func render(t *testing.T, p Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	return buf.String()
}

func TestRender_EmptyInputDisablesActions(t *testing.T) {
	out := render(t, NewPage("https://api.example.com", false, models.HealthConnected, ""))

	assert.Contains(t, out, `id="predict" disabled`)
	assert.Contains(t, out, `id="explain" disabled`)
	assert.NotContains(t, out, `id="clear" disabled`)
	assert.Contains(t, out, `0/280`)
	assert.NotContains(t, out, `id="local-mode"`)
	assert.Contains(t, out, "https://api.example.com")
}

func TestRender_ValidInputEnablesActions(t *testing.T) {
	text := strings.Repeat("a", 250)
	out := render(t, NewPage("http://127.0.0.1:8000", true, models.HealthConnected, text))

	assert.NotContains(t, out, `id="predict" disabled`)
	assert.NotContains(t, out, `id="explain" disabled`)
	assert.Contains(t, out, `style="color:orange">250/280`)
	assert.Contains(t, out, `id="local-mode"`)
}

func TestRender_Sidebar(t *testing.T) {
	out := render(t, NewPage("http://127.0.0.1:8000", true, models.HealthConnected, ""))

	assert.Contains(t, out, "<strong>Logistic Regression</strong>")
	for _, e := range Examples {
		assert.Contains(t, out, template.HTMLEscapeString(e))
	}
}

func TestRender_Prediction(t *testing.T) {
	p := NewPage("http://127.0.0.1:8000", true, models.HealthConnected, "great")
	p.Prediction = NewPredictionView(models.PredictionResult{
		Sentiment:           "positive",
		Confidence:          0.87,
		ProbabilityPositive: 0.87,
		ProbabilityNegative: 0.13,
	})
	out := render(t, p)

	assert.Contains(t, out, `class="badge badge-success" id="sentiment"`)
	assert.Contains(t, out, "POSITIVE (87.0%)")
	assert.Contains(t, out, `data-label="Negative" data-value="0.13"`)
	assert.Contains(t, out, `data-label="Positive" data-value="0.87"`)
	assert.Contains(t, out, `height="31.2" fill="red"`)
	assert.Contains(t, out, `height="208.8" fill="green"`)
}

func TestRender_Explanation(t *testing.T) {
	p := NewPage("http://127.0.0.1:8000", true, models.HealthConnected, "love bad")
	p.Explanation = NewExplanationView(models.ExplanationResult{
		HTMLExplanation: `<b class="x">hi</b>`,
		Explanation: []models.TokenWeight{
			{Word: "love", Weight: 0.42},
			{Word: "bad", Weight: -0.31},
		},
	})
	out := render(t, p)

	assert.Contains(t, out, `<span class="token token-positive" style="color:green">love</span> → 0.420`)
	assert.Contains(t, out, `<span class="token token-negative" style="color:red">bad</span> → -0.310`)
	// The fragment is attribute-escaped so the frame receives it verbatim.
	assert.Contains(t, out, `srcdoc="&lt;b class=&#34;x&#34;&gt;hi&lt;/b&gt;"`)
	// Scripts may run in the frame, but it stays cross-origin.
	assert.Contains(t, out, `<iframe sandbox="allow-scripts" srcdoc=`)
	assert.NotContains(t, out, "allow-same-origin")
}

func TestRender_HealthStatesAreDistinct(t *testing.T) {
	unreachable := render(t, NewPage("http://127.0.0.1:8000", true, models.HealthUnreachable, ""))
	connErr := render(t, NewPage("http://127.0.0.1:8000", true, models.HealthConnectionError, ""))

	assert.Contains(t, unreachable, `class="badge badge-warning" id="health"`)
	assert.Contains(t, connErr, `class="badge badge-error" id="health"`)
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown([]byte("**bold**"))
	assert.Equal(t, template.HTML("<p><strong>bold</strong></p>\n"), out)
}
