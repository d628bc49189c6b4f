package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/frankmovie1990-netizen/Generator-Foto/internal/gemini"
	"github.com/frankmovie1990-netizen/Generator-Foto/internal/prompt"
)

type Options struct {
	Gemini         *gemini.Client
	Logger         *slog.Logger
	MaxImageCount  int
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

type Handler struct {
	gem            *gemini.Client
	logger         *slog.Logger
	maxImageCount  int
	maxBodyBytes   int64
	requestTimeout time.Duration
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxCount := opts.MaxImageCount
	if maxCount < 1 {
		maxCount = 1
	}

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 32 << 20
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 240 * time.Second
	}

	return &Handler{
		gem:            opts.Gemini,
		logger:         logger,
		maxImageCount:  maxCount,
		maxBodyBytes:   maxBody,
		requestTimeout: timeout,
	}
}

type generateRequest struct {
	APIKey     string   `json:"apiKey"`
	Prompt     string   `json:"prompt"`
	Count      any      `json:"count"`
	Ratio      string   `json:"ratio"`
	References []string `json:"references"`
}

type generateResponse struct {
	Images []string `json:"images"`
}

type apiMessage struct {
	Message string `json:"message"`
}

type optionsResponse struct {
	Angles          []prompt.Option `json:"angles"`
	Ratios          []prompt.Option `json:"ratios"`
	BackgroundModes []prompt.Option `json:"backgroundModes"`
	OverlayFonts    []prompt.Option `json:"overlayFonts"`
}

// HandleGenerate is the generation gateway: it validates the normalized
// request, forwards it with the caller's credential, and maps the upstream
// outcome onto the response contract.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writePreflight(w)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, apiMessage{Message: "Method Not Allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, apiMessage{Message: "Invalid request body"})
		return
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		writeJSON(w, http.StatusBadRequest, apiMessage{Message: "Missing apiKey"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, apiMessage{Message: "Missing prompt"})
		return
	}

	count := coerceCount(req.Count)
	if count > h.maxImageCount {
		count = h.maxImageCount
	}

	ratio := strings.TrimSpace(req.Ratio)
	if ratio == "" {
		ratio = "1:1"
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	images, err := h.gem.GenerateImages(ctx, apiKey, gemini.Request{
		Prompt:      req.Prompt,
		Count:       count,
		AspectRatio: ratio,
		References:  req.References,
	})
	if err != nil {
		var statusErr *gemini.StatusError
		if errors.As(err, &statusErr) {
			writeJSON(w, statusErr.Code, apiMessage{Message: statusErr.Message})
			return
		}
		h.logger.Error("generate failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, apiMessage{Message: err.Error()})
		return
	}

	if len(images) == 0 {
		// An empty success is indistinguishable from an entitlement problem,
		// so it is never treated as "zero results are fine".
		writeJSON(w, http.StatusBadGateway, apiMessage{
			Message: fmt.Sprintf("Upstream returned OK but no images. Make sure your project and API key have access to the %s model.", h.gem.Model()),
		})
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, generateResponse{Images: images})
}

// HandleOptions publishes the fixed vocabularies the composer works from, so
// the front end's dropdowns cannot drift from the prompt tables.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writePreflight(w)
		return
	}
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, apiMessage{Message: "Method Not Allowed"})
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, optionsResponse{
		Angles:          prompt.Angles(),
		Ratios:          prompt.Ratios(),
		BackgroundModes: prompt.BackgroundModes(),
		OverlayFonts:    prompt.OverlayFonts(),
	})
}

func coerceCount(value any) int {
	switch v := value.(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && parsed >= 1 {
			return int(parsed)
		}
	case json.Number:
		if parsed, err := v.Float64(); err == nil && parsed >= 1 {
			return int(parsed)
		}
	}
	return 1
}

func writePreflight(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
