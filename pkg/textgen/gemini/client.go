// Package gemini provides a textgen.Client implementation backed by the
// Google Gemini REST API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pragency/pkg/serrors"
	"pragency/pkg/textgen"
	"strings"
)

// DefaultModel is the model used when no model name is configured.
const DefaultModel = "gemini-pro"

// Client talks to the Gemini generateContent REST API and fulfills the
// textgen.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	apiKey     string       // apiKey authenticates requests; empty means unconfigured
	model      string       // model is the Gemini model name, e.g. "gemini-pro"
}

// generateRequest is the request body of the generateContent endpoint.
// https://ai.google.dev/api/generate-content
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse holds the subset of the generateContent response we consume.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Complete sends the prompt to the Gemini API and returns the generated text
// of the first candidate. When no API key is configured it fails immediately
// with an unavailable error and performs no network call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", serrors.With(serrors.ErrUnavailable, "gemini API key is not configured")
	}

	bodyBytes, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("generate failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var genResp generateResponse
	if err := json.Unmarshal(b, &genResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("response contains no candidates")
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("response candidate contains no text")
	}

	return sb.String(), nil
}

// Ensure Client conforms to the textgen.Client interface at compile time.
var _ textgen.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API key and
// model name. An empty model falls back to DefaultModel. An empty API key
// produces a client whose Complete always fails; the service still starts
// without a key, agent calls just error out.
func New(httpClient *http.Client, apiKey string, model string) *Client {
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
	}
}
