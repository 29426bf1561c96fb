package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = goopenai.GPT4oMini

	// frequencyPenalty discourages the model from repeating profile phrases
	// verbatim across a conversation.
	frequencyPenalty = 0.2

	quotaCode = "insufficient_quota"
)

// Client generates chat replies through an OpenAI-compatible Chat Completions
// API. The API key comes from a static value or from SSM and is resolved on
// first use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	model       string
	apiKey      string
	getter      paramstore.Getter
	paramPrefix string

	secret *paramstore.Secret
}

type Option func(*Client)

// WithAPIKey sets a static API key, typically from OPENAI_API_KEY. It takes
// precedence over the parameter store.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// WithParamStore makes the client read its key from <prefix>/open-ai-token
// when no static key is configured.
func WithParamStore(getter paramstore.Getter, prefix string) Option {
	return func(c *Client) {
		c.getter = getter
		c.paramPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithModel sets the model used when a request does not name one.
func WithModel(model string) Option {
	return func(c *Client) {
		if m := strings.TrimSpace(model); m != "" {
			c.model = m
		}
	}
}

// NewClient creates a Client. A client without any key source is valid: every
// Generate call then fails as unauthenticated without touching the network.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		model:      defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.getter != nil && c.paramPrefix == "" {
		return nil, errors.New("openai: parameter prefix must not be empty")
	}
	name := ""
	if c.getter != nil {
		name = c.tokenParameterName()
	}
	c.secret = paramstore.NewSecret(c.apiKey, c.getter, name)
	return c, nil
}

// Configured reports whether the client has any way to obtain an API key.
func (c *Client) Configured() bool {
	return c.secret.Configured()
}

func (c *Client) tokenParameterName() string {
	return paramstore.Join(c.paramPrefix, "open-ai-token")
}

// normalizeBaseURL accepts hosts with or without the /v1 suffix.
func normalizeBaseURL(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return defaultBaseURL
	}
	if strings.HasSuffix(base, "/v1") {
		return base
	}
	return base + "/v1"
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// Generate sends the system prompt, history and user message to the Chat
// Completions endpoint. Every failure is a *domain.GenerationError whose Kind
// tells the caller how to degrade.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	apiKey, err := c.secret.Resolve(ctx)
	if err != nil {
		if errors.Is(err, paramstore.ErrNoSecret) {
			return "", &domain.GenerationError{Kind: domain.FailureUnauthenticated, Err: err}
		}
		return "", &domain.GenerationError{Kind: domain.FailureOther, Err: fmt.Errorf("openai: resolve api key: %w", err)}
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.model
	}

	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = normalizeBaseURL(c.baseURL)
	cfg.HTTPClient = c.resolvedHTTPClient()
	client := goopenai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:            model,
		Messages:         buildMessages(req),
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		FrequencyPenalty: frequencyPenalty,
	})
	if err != nil {
		return "", &domain.GenerationError{Kind: classify(err), Err: fmt.Errorf("openai: request failed: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return "", &domain.GenerationError{Kind: domain.FailureEmptyOutput, Err: errors.New("openai: no choices in response")}
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &domain.GenerationError{Kind: domain.FailureEmptyOutput, Err: errors.New("openai: empty completion")}
	}
	return text, nil
}

func buildMessages(req domain.GenerationRequest) []goopenai.ChatCompletionMessage {
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.History)+2)
	if sp := strings.TrimSpace(req.SystemPrompt); sp != "" {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: sp})
	}
	for _, turn := range req.History {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: turn.Role(), Content: text})
	}
	return append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: req.UserMessage})
}

// classify maps go-openai and transport errors onto failure kinds.
func classify(err error) domain.FailureKind {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Type == quotaCode || fmt.Sprint(apiErr.Code) == quotaCode {
			return domain.FailureQuotaExceeded
		}
		return classifyStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FailureNetworkUnreachable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.FailureNetworkUnreachable
	}
	return domain.FailureOther
}

func classifyStatus(status int) domain.FailureKind {
	switch status {
	case http.StatusTooManyRequests:
		return domain.FailureQuotaExceeded
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.FailureUnauthenticated
	default:
		return domain.FailureOther
	}
}
