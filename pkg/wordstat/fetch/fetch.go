// Package fetch calls the Yandex Wordstat topRequests endpoint.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/retry"
)

// DefaultBaseURL is the production Wordstat endpoint.
const DefaultBaseURL = "https://api.wordstat.yandex.net/v1/topRequests"

// Phrase is a search query string with its impression frequency.
type Phrase struct {
	Text  string `json:"phrase"`
	Count int    `json:"count"`
}

// Result holds one successful lookup.
type Result struct {
	Query      string
	TotalCount int
	Phrases    []Phrase
}

// Client calls the Wordstat API with bounded retry.
type Client struct {
	BaseURL string
	Token   string

	HTTPClient *http.Client
	Logger     *log.Logger

	// BackoffBase overrides the 5s backoff unit. Tests shrink it.
	BackoffBase time.Duration
	// sleep records backoff waits in tests; nil uses a real timer.
	sleep func(time.Duration)
}

type topRequest struct {
	Phrase  string   `json:"phrase"`
	Regions []int    `json:"regions"`
	Devices []string `json:"devices"`
}

type topResponse struct {
	TotalCount  int      `json:"totalCount"`
	TopRequests []Phrase `json:"topRequests"`
}

// Fetch issues one lookup for phrase in the given region, retrying
// remote-side and transport failures up to maxRetries attempts. Failures
// after the budget is spent come back wrapped around internalerr.ErrNoData;
// the caller records the phrase as "no data" and moves on.
func (c *Client) Fetch(ctx context.Context, phrase string, region int, devices []string, maxRetries int) (Result, error) {
	if phrase == "" {
		return Result{}, fmt.Errorf("fetch: empty phrase: %w", internalerr.ErrNoData)
	}
	if len(devices) == 0 {
		return Result{}, fmt.Errorf("fetch: no devices configured: %w", internalerr.ErrNoData)
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	body, err := json.Marshal(topRequest{
		Phrase:  phrase,
		Regions: []int{region},
		Devices: devices,
	})
	if err != nil {
		return Result{}, fmt.Errorf("fetch %q: encode request: %w", phrase, err)
	}

	base := c.BackoffBase
	if base == 0 {
		base = 5 * time.Second
	}

	var result Result
	err = retry.Do(ctx, retry.Config{MaxAttempts: maxRetries, BaseDelay: base, Sleep: c.sleep}, func(attempt int) error {
		res, attemptErr := c.attempt(ctx, phrase, body)
		if attemptErr != nil {
			c.logf("wordstat %q attempt %d/%d: %v", phrase, attempt, maxRetries, attemptErr)
			return attemptErr
		}
		result = res
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("fetch %q: %v: %w", phrase, err, internalerr.ErrNoData)
	}

	result.Query = phrase
	return result, nil
}

// attempt performs a single remote call. Remote-side (HTTP status) and
// transport errors are retryable; everything else is wrapped non-retryable
// so the retry loop abandons the phrase immediately.
func (c *Client) attempt(ctx context.Context, phrase string, body []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL(), bytes.NewReader(body))
	if err != nil {
		return Result{}, retry.NonRetryable(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		// Transport failure: no response to read, keep retrying.
		return Result{}, fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(errBody))
	}

	var payload topResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, retry.NonRetryable(fmt.Errorf("decode response: %w", err))
	}

	for _, p := range payload.TopRequests {
		if p.Count < 0 {
			return Result{}, retry.NonRetryable(fmt.Errorf("negative frequency %d for %q", p.Count, p.Text))
		}
	}

	return Result{TotalCount: payload.TotalCount, Phrases: payload.TopRequests}, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
