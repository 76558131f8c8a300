package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Ollama is a minimal client for the local /api/generate endpoint.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllama(baseURL, model string, client *http.Client) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  client,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends a single non-streaming completion request and returns the
// trimmed response text.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	metrics.LLMCalls.Add(1)

	body, err := json.Marshal(generateRequest{Model: o.model, Prompt: prompt})
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return strings.TrimSpace(data.Response), nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// sliceJSONObject cuts the text down to the outermost {...} span. Models
// often wrap the requested JSON in prose; anything outside the braces is
// discarded. Returns the input unchanged when no braces are found.
func sliceJSONObject(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return s
	}
	return s[first : last+1]
}
