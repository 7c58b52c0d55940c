package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/dashboard"
	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/monitoring"
)

// SentimentAPI is the part of the classification service the dashboard uses.
type SentimentAPI interface {
	Health(ctx context.Context) (int, error)
	Predict(ctx context.Context, text string) (models.PredictionResult, error)
	Explain(ctx context.Context, text string) (models.ExplanationResult, error)
}

type HTTPHandler struct {
	api       SentimentAPI
	renderer  *dashboard.Renderer
	apiURL    string
	localMode bool
}

func NewHTTPHandler(api SentimentAPI, renderer *dashboard.Renderer, apiURL string, localMode bool) *HTTPHandler {
	return &HTTPHandler{
		api:       api,
		renderer:  renderer,
		apiURL:    apiURL,
		localMode: localMode,
	}
}

// HandleIndex renders the dashboard. A picked example replaces the input.
func (h *HTTPHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	text := ""
	if example, ok := dashboard.ExampleByIndex(r.URL.Query().Get("example")); ok {
		text = example
	}
	h.render(w, r, h.newPage(r, text))
}

func (h *HTTPHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	text, ok := h.formText(w, r)
	if !ok {
		return
	}

	page := h.newPage(r, text)
	if !page.TextValid {
		page.Notice = invalidTextNotice()
		h.render(w, r, page)
		return
	}

	res, err := h.api.Predict(r.Context(), text)
	if err != nil {
		page.Notice = failureNotice(err, "Request to the API failed.")
	} else {
		page.Prediction = dashboard.NewPredictionView(res)
	}
	h.render(w, r, page)
}

func (h *HTTPHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	text, ok := h.formText(w, r)
	if !ok {
		return
	}

	page := h.newPage(r, text)
	if !page.TextValid {
		page.Notice = invalidTextNotice()
		h.render(w, r, page)
		return
	}

	res, err := h.api.Explain(r.Context(), text)
	if err != nil {
		page.Notice = failureNotice(err, "⚠️ The LIME explanation could not be generated.")
	} else {
		page.Explanation = dashboard.NewExplanationView(res)
	}
	h.render(w, r, page)
}

// HandleClear drops the input and sends the browser back to a fresh page.
func (h *HTTPHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *HTTPHandler) formText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return "", false
	}
	// Browsers submit textarea line breaks as CRLF but count them as one
	// character.
	return strings.ReplaceAll(r.PostForm.Get("text"), "\r\n", "\n"), true
}

// newPage probes the API on every render; the result is never cached.
func (h *HTTPHandler) newPage(r *http.Request, text string) dashboard.Page {
	health := monitoring.ProbeAPI(r.Context(), h.api)
	return dashboard.NewPage(h.apiURL, h.localMode, health, text)
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, page dashboard.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		slog.Error("[HTTPHandler] Failed to render page",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		http.Error(w, "Could not render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func invalidTextNotice() *dashboard.Badge {
	return &dashboard.Badge{
		Kind: dashboard.BADGE_WARNING,
		Text: "The text must contain between 1 and 280 characters.",
	}
}

// failureNotice keeps non-200 answers generic and surfaces the cause of any
// other failure.
func failureNotice(err error, statusMsg string) *dashboard.Badge {
	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		return &dashboard.Badge{Kind: dashboard.BADGE_ERROR, Text: statusMsg}
	}
	return &dashboard.Badge{Kind: dashboard.BADGE_ERROR, Text: "Error: " + err.Error()}
}
