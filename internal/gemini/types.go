package gemini

import "fmt"

// Request is one normalized generation request. References are raw base64
// image payloads; the client wraps them into the provider's inline format.
type Request struct {
	Prompt      string
	Count       int
	AspectRatio string
	References  []string
}

// StatusError carries a non-success upstream HTTP status and the most
// specific message that could be derived from its body.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream HTTP %d: %s", e.Code, e.Message)
}

type imageRequest struct {
	Prompt      textPrompt  `json:"prompt"`
	ImageCount  int         `json:"imageCount"`
	AspectRatio string      `json:"aspectRatio"`
	References  []reference `json:"references,omitempty"`
}

type textPrompt struct {
	Text string `json:"text"`
}

type reference struct {
	InlineData blob `json:"inlineData"`
}

type blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type imageResponse struct {
	Images []imageEntry `json:"images"`
}

// imageEntry tolerates both observed upstream shapes: a direct base64 field
// or a nested inline-data field.
type imageEntry struct {
	Base64Data string `json:"base64Data"`
	InlineData *blob  `json:"inlineData"`
}

type errorResponse struct {
	Error *upstreamError `json:"error"`
}

type upstreamError struct {
	Message string `json:"message"`
}
