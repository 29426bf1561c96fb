package recaptcha

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

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
)

const (
	defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	DefaultMinScore  = 0.5
)

// verifyResponse is the siteverify response shape. v2 checkbox tokens carry
// no score and are therefore never accepted.
type verifyResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("recaptcha: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client verifies reCAPTCHA v3 tokens against Google's siteverify endpoint.
type Client struct {
	verifyURL  string
	httpClient *http.Client
	minScore   float64
	secret     *paramstore.Secret
}

type Option func(*Client)

func WithVerifyURL(u string) Option {
	return func(c *Client) {
		c.verifyURL = strings.TrimSpace(u)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMinScore sets the lowest accepted score. Values outside (0, 1] are ignored.
func WithMinScore(score float64) Option {
	return func(c *Client) {
		if score > 0 && score <= 1 {
			c.minScore = score
		}
	}
}

// NewClient builds a verifier around secret. The secret may be static or come
// from the parameter store; see paramstore.NewSecret.
func NewClient(secret *paramstore.Secret, opts ...Option) (*Client, error) {
	if !secret.Configured() {
		return nil, errors.New("recaptcha: secret key must be configured")
	}
	c := &Client{
		verifyURL:  defaultVerifyURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		minScore:   DefaultMinScore,
		secret:     secret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Verify checks token and reports whether it is accepted. A token is accepted
// when Google reports success and the score reaches the minimum.
func (c *Client) Verify(ctx context.Context, token string) (domain.Verification, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Verification{}, errors.New("recaptcha: token must not be empty")
	}
	secret, err := c.secret.Resolve(ctx)
	if err != nil {
		return domain.Verification{}, fmt.Errorf("recaptcha: resolve secret: %w", err)
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Verification{}, fmt.Errorf("recaptcha: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Verification{}, fmt.Errorf("recaptcha: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return domain.Verification{}, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        c.verifyURL,
			Body:       string(buf),
		}
	}

	var payload verifyResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<16)).Decode(&payload); err != nil {
		return domain.Verification{}, fmt.Errorf("recaptcha: decode response: %w", err)
	}

	var v domain.Verification
	if payload.Score != nil {
		v.Score = *payload.Score
	}
	v.Accepted = payload.Success && v.Score >= c.minScore
	return v, nil
}
