package nyt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"

	"github.com/umputun/topstories/pkg/domain"
)

// DefaultBaseURL is the top stories API v2 endpoint
const DefaultBaseURL = "https://api.nytimes.com/svc/topstories/v2"

const (
	defaultTimeout    = 10 * time.Second
	defaultAttempts   = 3
	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
)

// Client fetches top stories by section
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	attempts   int
	retryDelay time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter // nil for unlimited
	now        func() time.Time
}

// Config holds client parameters, zero values are replaced by defaults
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // per attempt
	Attempts   int           // total attempts including the first one
	RetryDelay time.Duration // initial backoff delay, doubled on each retry
	PerMinute  int           // max requests per minute, retries included. 0 for unlimited
	HTTPClient *http.Client
}

// New creates a new client
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	var limiter *rate.Limiter
	if cfg.PerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.PerMinute)), 1)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		attempts:   cfg.Attempts,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
		limiter:    limiter,
		now:        time.Now,
	}
}

// TopStories fetches section and returns normalized articles
func (c *Client) TopStories(ctx context.Context, section string) ([]domain.Article, error) {
	resp, err := c.FetchSection(ctx, section)
	if err != nil {
		return nil, err
	}
	return Normalize(resp, c.now()), nil
}

// FetchSection retrieves raw top stories of the section. Failed attempts are repeated with
// exponential backoff unless the failure has a 4xx status. Returned error is always *APIError.
func (c *Client) FetchSection(ctx context.Context, section string) (*RawResponse, error) {
	if !domain.ValidSection(section) {
		return nil, &APIError{Kind: KindClientError, Status: http.StatusBadRequest, Message: msgGeneric,
			Err: fmt.Errorf("unknown section %q", section)}
	}

	reqURL := fmt.Sprintf("%s/%s.json?%s", c.baseURL, url.PathEscape(section), url.Values{"api-key": {c.apiKey}}.Encode())

	var resp *RawResponse
	attempt := 0
	retrier := repeater.NewBackoff(c.attempts, c.retryDelay,
		repeater.WithMaxDelay(maxRetryDelay), repeater.WithJitter(0))

	err := retrier.Do(ctx, func() error {
		attempt++
		r, apiErr := c.fetch(ctx, reqURL)
		if apiErr != nil {
			lgr.Printf("[DEBUG] fetch section %s, attempt %d/%d failed: %v", section, attempt, c.attempts, apiErr)
			return apiErr
		}
		resp = r
		return nil
	}, errNoRetry)

	if err == nil {
		lgr.Printf("[DEBUG] fetched section %s, %d results", section, len(resp.Results))
		return resp, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil, apiErr
	}
	// repeater stopped by the caller's context
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, &APIError{Kind: KindTimeout, Status: http.StatusRequestTimeout, Message: msgTimeout, Err: err}
	}
	return nil, &APIError{Kind: KindNetworkFailure, Message: msgNetwork, Err: err}
}

// fetch makes a single request bounded by the client timeout
func (c *Client) fetch(ctx context.Context, reqURL string) (*RawResponse, *APIError) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &APIError{Kind: KindNetworkFailure, Message: msgRateLimited, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &APIError{Kind: KindUnknown, Message: msgGeneric, Err: fmt.Errorf("make request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURL(err)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &APIError{Kind: KindTimeout, Status: http.StatusRequestTimeout, Message: msgTimeout, Err: err}
		}
		return nil, &APIError{Kind: KindNetworkFailure, Message: msgNetwork, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, statusError(resp.StatusCode)
	}

	var raw RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &APIError{Kind: KindTimeout, Status: http.StatusRequestTimeout, Message: msgTimeout, Err: err}
		}
		return nil, &APIError{Kind: KindUnknown, Message: msgNetwork, Err: fmt.Errorf("decode response: %w", err)}
	}

	if raw.Status != "OK" {
		return nil, &APIError{Kind: KindServerRejected, Status: http.StatusInternalServerError, Message: msgGeneric,
			Err: fmt.Errorf("response status %q", raw.Status)}
	}
	return &raw, nil
}

// redactURL removes query (with api key) from url errors
func redactURL(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	if u, perr := url.Parse(ue.URL); perr == nil {
		u.RawQuery = ""
		ue.URL = u.String()
	}
	return ue
}
