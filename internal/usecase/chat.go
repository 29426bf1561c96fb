package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/fallback"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/language"
)

const (
	defaultMaxContext      = 5
	defaultGenerateTimeout = 12 * time.Second

	generationTemperature = 0.4
	generationMaxTokens   = 600
)

type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// Generator produces a reply from the hosted language model. Failures should
// be *domain.GenerationError so the responder can pick the right fallback.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// Source tells where a reply came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

type RespondInput struct {
	Message string
	History []domain.ConversationTurn
}

type RespondOutput struct {
	Response string
	Language language.Language
	Source   Source
	// Topic and Failure are only set for fallback replies.
	Topic   fallback.Topic
	Failure domain.FailureKind
}

// delegation is the outcome of one attempt at the generative service.
type delegation struct {
	text    string
	failure domain.FailureKind
	err     error
}

type ChatService struct {
	generator       Generator
	corpus          *fallback.Corpus
	params          ParamGetter
	paramPrefix     string
	maxContextItems int
	timeout         time.Duration

	cacheMu       sync.RWMutex
	cacheLoaded   bool
	knowledgeBase string
	openaiModel   string
}

type ChatOption func(*ChatService)

// WithParams lets the service override the knowledge base and model from
// <prefix>/knowledge_base and <prefix>/config/openai_model.
func WithParams(p ParamGetter, prefix string) ChatOption {
	return func(s *ChatService) {
		s.params = p
		s.paramPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

func WithMaxContextItems(n int) ChatOption {
	return func(s *ChatService) {
		if n > 0 {
			s.maxContextItems = n
		}
	}
}

func WithGenerateTimeout(d time.Duration) ChatOption {
	return func(s *ChatService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithKnowledgeBase(kb string) ChatOption {
	return func(s *ChatService) {
		if strings.TrimSpace(kb) != "" {
			s.knowledgeBase = strings.TrimSpace(kb)
		}
	}
}

func NewChatService(g Generator, corpus *fallback.Corpus, opts ...ChatOption) (*ChatService, error) {
	if g == nil {
		return nil, errors.New("usecase: generator must not be nil")
	}
	if corpus == nil {
		return nil, errors.New("usecase: fallback corpus must not be nil")
	}
	s := &ChatService{
		generator:       g,
		corpus:          corpus,
		maxContextItems: defaultMaxContext,
		timeout:         defaultGenerateTimeout,
		knowledgeBase:   DefaultKnowledgeBase(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.params != nil && s.paramPrefix == "" {
		return nil, errors.New("usecase: parameter prefix must not be empty")
	}
	if s.params == nil {
		s.cacheLoaded = true
	}
	return s, nil
}

// Respond always returns displayable text. It first delegates to the
// generative service and falls back to the canned corpus on any failure,
// prefixing the localized quota notice when the failure was a usage limit.
func (s *ChatService) Respond(ctx context.Context, in RespondInput) RespondOutput {
	preferred := language.Detect(in.Message)

	d := s.delegate(ctx, in, preferred)
	if d.failure == domain.FailureNone {
		slog.Info("chat reply generated", "language", string(preferred), "source", string(SourceModel))
		return RespondOutput{Response: d.text, Language: preferred, Source: SourceModel}
	}

	topic, text := s.corpus.Answer(in.Message, len(in.History), preferred)
	if d.failure == domain.FailureQuotaExceeded {
		text = s.corpus.QuotaNotice(preferred) + text
	}

	attrs := []any{"language", string(preferred), "topic", string(topic), "failure", d.failure.String()}
	if d.err != nil {
		attrs = append(attrs, "err", d.err)
	}
	if d.failure == domain.FailureUnauthenticated || d.failure == domain.FailureQuotaExceeded {
		slog.Warn("generation unavailable, using fallback", attrs...)
	} else {
		slog.Info("generation failed, using fallback", attrs...)
	}

	return RespondOutput{
		Response: text,
		Language: preferred,
		Source:   SourceFallback,
		Topic:    topic,
		Failure:  d.failure,
	}
}

func (s *ChatService) delegate(ctx context.Context, in RespondInput, preferred language.Language) delegation {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	knowledgeBase, model := s.profile(ctx)

	text, err := s.generator.Generate(ctx, domain.GenerationRequest{
		Model:        model,
		SystemPrompt: buildSystemPrompt(knowledgeBase, preferred),
		History:      trailingHistory(in.History, s.maxContextItems),
		UserMessage:  in.Message,
		Temperature:  generationTemperature,
		MaxTokens:    generationMaxTokens,
	})
	if err != nil {
		kind := domain.FailureKindOf(err)
		if kind == domain.FailureOther && errors.Is(err, context.DeadlineExceeded) {
			kind = domain.FailureNetworkUnreachable
		}
		return delegation{failure: kind, err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return delegation{failure: domain.FailureEmptyOutput}
	}
	return delegation{text: text}
}

// profile returns the knowledge base and model override. A failed parameter
// load keeps the built-in profile for this call and is retried next time.
func (s *ChatService) profile(ctx context.Context) (string, string) {
	if err := s.ensureConfig(ctx); err != nil {
		slog.Warn("failed to load chat profile, using defaults", "err", err)
	}
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	return s.knowledgeBase, s.openaiModel
}

func (s *ChatService) ensureConfig(ctx context.Context) error {
	s.cacheMu.RLock()
	if s.cacheLoaded {
		s.cacheMu.RUnlock()
		return nil
	}
	s.cacheMu.RUnlock()

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheLoaded {
		return nil
	}

	knowledgeBase, openaiModel, err := s.loadSSMParams(ctx)
	if err != nil {
		return err
	}
	if knowledgeBase != "" {
		s.knowledgeBase = knowledgeBase
	}
	s.openaiModel = openaiModel
	s.cacheLoaded = true
	return nil
}

func (s *ChatService) loadSSMParams(ctx context.Context) (string, string, error) {
	knowledgeBase, err := s.optionalParam(ctx, "knowledge_base")
	if err != nil {
		return "", "", err
	}
	openaiModel, err := s.optionalParam(ctx, "config/openai_model")
	if err != nil {
		return "", "", err
	}
	return knowledgeBase, openaiModel, nil
}

// optionalParam treats a missing parameter as unset.
func (s *ChatService) optionalParam(ctx context.Context, name string) (string, error) {
	v, err := s.params.GetParameter(ctx, paramstore.Join(s.paramPrefix, name))
	if err != nil {
		if errors.Is(err, paramstore.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(v), nil
}
