package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// apifyErrorExcerpt limits how much of an actor error body ends up in logs.
const apifyErrorExcerpt = 500

// Apify calls actors through the run-sync-get-dataset-items endpoint:
// the actor runs to completion and the response body is its dataset.
type Apify struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// NewApify creates an actor client. Runs are throttled to 2/sec.
func NewApify(baseURL, token string, client *http.Client) *Apify {
	return &Apify{
		baseURL: baseURL,
		token:   token,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
}

// RunSync starts an actor run with the given input and decodes the resulting
// dataset items into out (a pointer to a slice). Single attempt, no retry.
func (a *Apify) RunSync(ctx context.Context, actorID string, input any, out any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}
	metrics.ActorRuns.Add(1)

	body, err := json.Marshal(input)
	if err != nil {
		metrics.ActorErrors.Add(1)
		return fmt.Errorf("encode actor input: %w", err)
	}

	u := fmt.Sprintf("%s/%s/run-sync-get-dataset-items?token=%s",
		a.baseURL, actorID, url.QueryEscape(a.token))

	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(body))
	if err != nil {
		metrics.ActorErrors.Add(1)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		metrics.ActorErrors.Add(1)
		return fmt.Errorf("actor %s: %w", actorID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ActorErrors.Add(1)
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, apifyErrorExcerpt))
		return &apifyStatusError{StatusCode: resp.StatusCode, Body: string(excerpt)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ActorErrors.Add(1)
		return fmt.Errorf("decode actor %s dataset: %w", actorID, err)
	}
	return nil
}
