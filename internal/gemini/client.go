package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const defaultModel = "gemini-2.5-flash-image"

type Options struct {
	BaseURL    string
	APIVersion string
	Model      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	baseURL    string
	apiVersion string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		apiVersion: apiVersion,
		model:      model,
		httpClient: opts.HTTPClient,
		logger:     logger,
	}
}

// Model reports the configured upstream model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateImages posts one generation request to the Images API and returns
// the base64 payloads it could extract. The credential is used for this call
// only; it is never stored on the client and never logged.
func (c *Client) GenerateImages(ctx context.Context, apiKey string, req Request) ([]string, error) {
	if c.httpClient == nil {
		return nil, errors.New("http client is nil")
	}

	payload := imageRequest{
		Prompt:      textPrompt{Text: req.Prompt},
		ImageCount:  req.Count,
		AspectRatio: req.AspectRatio,
	}
	for _, ref := range req.References {
		payload.References = append(payload.References, reference{
			InlineData: blob{MimeType: "image/jpeg", Data: ref},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateImage", c.baseURL, c.apiVersion, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer httpResp.Body.Close()

	// Read the body as text first so non-JSON error bodies are not lost.
	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, statusErrorFromBody(httpResp.StatusCode, rawBody)
	}

	var decoded imageResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		// Tolerated: an undecodable success body simply yields no images.
		c.logger.Warn("upstream success body not decodable", "err", err)
	}

	images := extractImages(decoded.Images)
	c.logger.Info("upstream generate", "status", httpResp.StatusCode, "images", len(images))
	return images, nil
}

// extractors are tried in order per image entry; the first non-empty result
// wins. A new upstream field variant gets a new entry here.
var extractors = []func(imageEntry) string{
	func(e imageEntry) string { return e.Base64Data },
	func(e imageEntry) string {
		if e.InlineData != nil {
			return e.InlineData.Data
		}
		return ""
	},
}

func extractImages(entries []imageEntry) []string {
	var out []string
	for _, entry := range entries {
		for _, extract := range extractors {
			if data := extract(entry); data != "" {
				out = append(out, data)
				break
			}
		}
	}
	return out
}

func statusErrorFromBody(status int, rawBody []byte) *StatusError {
	var decoded errorResponse
	_ = json.Unmarshal(rawBody, &decoded)

	message := ""
	if decoded.Error != nil {
		message = strings.TrimSpace(decoded.Error.Message)
	}
	if message == "" {
		message = strings.TrimSpace(string(rawBody))
	}
	if message == "" {
		message = fmt.Sprintf("Upstream HTTP %d", status)
	}

	return &StatusError{Code: status, Message: message}
}
