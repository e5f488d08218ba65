// Package ollama is a minimal client for a locally hosted Ollama
// generation endpoint. The model is treated as an opaque text transformer:
// prompt in, response text out.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the standard local Ollama address.
const DefaultBaseURL = "http://localhost:11434"

// Mode selects the generation parameter profile.
type Mode int

const (
	// ModeDetailed is used for deep single-section analysis.
	ModeDetailed Mode = iota
	// ModeSimplified trades depth for speed when processing a whole book.
	ModeSimplified
)

// Options are Ollama generation parameters.
type Options struct {
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"top_p"`
	MaxTokens     int     `json:"max_tokens"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

// optionsFor returns the parameter profile and request timeout for a mode.
func optionsFor(mode Mode) (Options, time.Duration) {
	if mode == ModeSimplified {
		return Options{
			Temperature:   0.1,
			TopP:          0.8,
			MaxTokens:     2000,
			RepeatPenalty: 1.0,
		}, 120 * time.Second
	}
	return Options{
		Temperature:   0.3,
		TopP:          0.9,
		MaxTokens:     6000,
		RepeatPenalty: 1.1,
	}, 300 * time.Second
}

type generateRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Client calls one Ollama endpoint with one model name.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a client for the given endpoint and model. An empty
// baseURL falls back to DefaultBaseURL.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends prompt to the model and returns its full response text.
// The per-mode timeout applies on top of any deadline already on ctx.
func (c *Client) Generate(ctx context.Context, prompt string, mode Mode) (string, error) {
	opts, timeout := optionsFor(mode)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: opts,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	return gr.Response, nil
}
