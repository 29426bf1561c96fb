package paramstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoSecret means neither a static value nor a parameter store source was
// configured for a secret.
var ErrNoSecret = errors.New("paramstore: secret not configured")

// tokenPayload is the expected JSON shape stored in SSM for API tokens.
type tokenPayload struct {
	Token string `json:"token"`
}

// Secret resolves an API credential either from a static value (usually an
// environment variable) or from a SecureString parameter holding
// {"token":"..."}. Parameter store lookups happen on first use; a successful
// value is cached for the life of the process and failures are retried on the
// next call.
type Secret struct {
	static string
	getter Getter
	name   string

	mu    sync.RWMutex
	value string
}

// NewSecret builds a Secret. static wins when non-empty; getter and name are
// only consulted otherwise and may be left empty.
func NewSecret(static string, getter Getter, name string) *Secret {
	return &Secret{
		static: strings.TrimSpace(static),
		getter: getter,
		name:   strings.TrimSpace(name),
	}
}

// Configured reports whether Resolve has any source to try.
func (s *Secret) Configured() bool {
	if s == nil {
		return false
	}
	return s.static != "" || (s.getter != nil && s.name != "")
}

// Resolve returns the secret value. It returns an error wrapping ErrNoSecret
// when nothing is configured or the parameter does not exist.
func (s *Secret) Resolve(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", ErrNoSecret
	}
	if s.static != "" {
		return s.static, nil
	}

	s.mu.RLock()
	cached := s.value
	s.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value != "" {
		return s.value, nil
	}
	v, err := fetchToken(ctx, s.getter, s.name)
	if err != nil {
		return "", err
	}
	s.value = v
	return v, nil
}

func fetchToken(ctx context.Context, getter Getter, name string) (string, error) {
	if getter == nil {
		return "", errors.New("paramstore: getter is nil")
	}
	if name == "" {
		return "", errors.New("paramstore: token parameter name is empty")
	}

	raw, err := getter.GetParameter(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: %v", ErrNoSecret, err)
		}
		return "", fmt.Errorf("paramstore: fetch token: %w", err)
	}
	var tp tokenPayload
	if err := json.Unmarshal([]byte(raw), &tp); err != nil {
		return "", fmt.Errorf("paramstore: unmarshal token value as JSON: %w", err)
	}
	if strings.TrimSpace(tp.Token) == "" {
		return "", fmt.Errorf("%w: token in %q is empty", ErrNoSecret, name)
	}
	return tp.Token, nil
}
