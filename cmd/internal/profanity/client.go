// Package profanity calls the apilayer bad-words API to censor
// user-submitted text before it is stored.
package profanity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"qna/cmd/internal/rejection"
)

const defaultBaseURL = "https://api.apilayer.com/bad_words?censor_character=*"

// Client is the HTTP client for the bad-words API. Safe for concurrent use.
type Client struct {
	log     *slog.Logger
	http    *http.Client
	apiKey  string
	baseURL string
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient constructs a profanity client.
func NewClient(log *slog.Logger, apiKey string, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		log:     log,
		http:    &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type checkResponse struct {
	Content         string `json:"content"`
	BadWordsTotal   int    `json:"bad_words_total"`
	CensoredContent string `json:"censored_content"`
}

// Check submits text and returns the censored version. Transport failures
// surface as an external-api rejection; non-2xx API replies carry their
// status and message internally and are responded to generically.
func (c *Client) Check(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(text))
	if err != nil {
		return "", rejection.ExternalAPIError{Err: err}
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", rejection.ExternalAPIError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", rejection.APILayerError{
			Status:  resp.StatusCode,
			Message: string(msg),
		}
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", rejection.ExternalAPIError{Err: err}
	}

	// The API omits censored content when nothing was flagged.
	if body.BadWordsTotal == 0 || body.CensoredContent == "" {
		return text, nil
	}
	return body.CensoredContent, nil
}
