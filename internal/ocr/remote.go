package ocr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultRemoteModel is the vision model used when none is configured.
	DefaultRemoteModel = "llava"

	// remoteTimeout bounds a single recognition request. Vision models can
	// take minutes on large scans.
	remoteTimeout = 5 * time.Minute
)

const recognitionPrompt = `Extract all text from this image of a scanned document.
Return ONLY the text content, preserving line breaks.
Do not add any commentary or explanation.
If no text is found, return an empty response.`

// Remote recognizes text by sending the image to an Ollama-compatible vision
// service at a fixed, externally configured address.
type Remote struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewRemote creates a remote engine for the service at endpoint.
func NewRemote(endpoint, model string) *Remote {
	if model == "" {
		model = DefaultRemoteModel
	}
	return &Remote{
		endpoint: endpoint,
		model:    model,
		httpClient: &http.Client{
			Timeout: remoteTimeout,
		},
	}
}

// Name identifies the engine implementation.
func (r *Remote) Name() string { return EngineRemote }

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Recognize extracts text from img.
func (r *Remote) Recognize(img image.Image) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(&generateRequest{
		Model:  r.model,
		Prompt: recognitionPrompt,
		Images: []string{base64.StdEncoding.EncodeToString(data)},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := r.httpClient.Post(r.endpoint+"/api/generate", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("recognition service is not accessible: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return "", fmt.Errorf("recognition service error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("recognition service error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return genResp.Response, nil
}
