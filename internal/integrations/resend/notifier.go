package resend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	resendsdk "github.com/resend/resend-go/v2"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
)

const DefaultFrom = "Form Submission <onboarding@resend.dev>"

// ErrMisconfigured means the notifier lacks an API key or a recipient.
var ErrMisconfigured = fmt.Errorf("resend: email delivery is %w", domain.ErrNotConfigured)

// emailAPI is the subset of the Resend SDK the notifier uses.
// resendsdk.Client.Emails satisfies this interface.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resendsdk.SendEmailRequest) (*resendsdk.SendEmailResponse, error)
}

// Notifier delivers form submission emails through Resend.
type Notifier struct {
	secret    *paramstore.Secret
	from      string
	to        string
	newEmails func(apiKey string) emailAPI
}

type Option func(*Notifier)

// WithFrom overrides the sender address.
func WithFrom(from string) Option {
	return func(n *Notifier) {
		if f := strings.TrimSpace(from); f != "" {
			n.from = f
		}
	}
}

// WithRecipient sets the address used when a notification has none.
func WithRecipient(to string) Option {
	return func(n *Notifier) {
		n.to = strings.TrimSpace(to)
	}
}

// NewNotifier builds a Notifier. A notifier without an API key is valid and
// reports ErrMisconfigured from Send, so the contact form can surface it.
func NewNotifier(secret *paramstore.Secret, opts ...Option) *Notifier {
	n := &Notifier{
		secret: secret,
		from:   DefaultFrom,
		newEmails: func(apiKey string) emailAPI {
			return resendsdk.NewClient(apiKey).Emails
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send delivers the notification. Missing configuration yields an error
// wrapping ErrMisconfigured; anything the provider rejects is returned wrapped.
func (n *Notifier) Send(ctx context.Context, msg domain.Notification) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		to = n.to
	}
	if to == "" {
		return fmt.Errorf("%w: no recipient", ErrMisconfigured)
	}
	if !n.secret.Configured() {
		return fmt.Errorf("%w: no api key", ErrMisconfigured)
	}
	apiKey, err := n.secret.Resolve(ctx)
	if err != nil {
		if errors.Is(err, paramstore.ErrNoSecret) {
			return fmt.Errorf("%w: %v", ErrMisconfigured, err)
		}
		return fmt.Errorf("resend: resolve api key: %w", err)
	}

	resp, err := n.newEmails(apiKey).SendWithContext(ctx, &resendsdk.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: send email: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Id) == "" {
		return errors.New("resend: send email: empty response")
	}
	return nil
}
