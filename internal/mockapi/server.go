// Package mockapi is a stand-in for the sentiment classification service.
// It speaks the same /health, /predict and /explain contract and scores text
// with VADER so the dashboard can be run and tested without the real model.
package mockapi

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/sentiment"
)

var explanationTmpl = template.Must(template.New("explanation").Parse(`<table class="lime">
<thead><tr><th>Word</th><th>Weight</th></tr></thead>
<tbody>
{{- range .}}
<tr><td style="color:{{if gt .Weight 0.0}}green{{else}}red{{end}}">{{.Word}}</td><td>{{printf "%.3f" .Weight}}</td></tr>
{{- end}}
</tbody>
</table>`))

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", health)
	r.Post("/predict", predict)
	r.Post("/explain", explain)
	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func predict(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	score := sentiment.AnalyzeWithVADER(text)
	slog.Debug("[MockAPI] Predicted sentiment",
		slog.String("label", score.Label()),
		slog.Float64("compound", score.Compound))

	writeJSON(w, http.StatusOK, models.PredictionResult{
		Sentiment:           score.Label(),
		Confidence:          score.Confidence(),
		ProbabilityPositive: score.ProbabilityPositive,
		ProbabilityNegative: score.ProbabilityNegative,
	})
}

func explain(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}
	start := time.Now()

	scores := sentiment.ScoreTokens(text)
	tokens := make([]models.TokenWeight, 0, len(scores))
	for _, s := range scores {
		tokens = append(tokens, models.TokenWeight{Word: s.Word, Weight: s.Weight})
	}

	var buf bytes.Buffer
	if err := explanationTmpl.Execute(&buf, tokens); err != nil {
		slog.Error("[MockAPI] Failed to render explanation",
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "explanation failed"})
		return
	}

	slog.Debug("[MockAPI] Explained text",
		slog.Int("tokens", len(tokens)),
		slog.Duration("elapsed", time.Since(start)))

	writeJSON(w, http.StatusOK, models.ExplanationResult{
		HTMLExplanation: buf.String(),
		Explanation:     tokens,
	})
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "text must not be empty"})
		return "", false
	}
	return req.Text, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[MockAPI] Failed to write response",
			slog.String("error", err.Error()))
	}
}
