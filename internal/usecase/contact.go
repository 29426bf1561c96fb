package usecase

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-assistant/internal/domain"
)

//go:embed templates/notification.html
var templateFS embed.FS

var notificationTemplate = template.Must(template.ParseFS(templateFS, "templates/notification.html"))

const (
	defaultFormName = "contact"
	notAvailable    = "N/A"
)

// Notifier delivers a rendered notification email.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Verifier checks a bot-verification token.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Verification, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

type ContactInput struct {
	Form           string
	Fields         []domain.ContactField
	RecaptchaToken string
}

type ContactService struct {
	notifier  Notifier
	verifier  Verifier
	recipient string
	now       func() time.Time
}

type ContactOption func(*ContactService)

// WithVerifier enables token verification. Without it submissions are not
// bot-checked.
func WithVerifier(v Verifier) ContactOption {
	return func(s *ContactService) {
		s.verifier = v
	}
}

// WithRecipient sets the address notifications are sent to.
func WithRecipient(to string) ContactOption {
	return func(s *ContactService) {
		s.recipient = strings.TrimSpace(to)
	}
}

func NewContactService(n Notifier, opts ...ContactOption) (*ContactService, error) {
	if n == nil {
		return nil, errors.New("usecase: notifier must not be nil")
	}
	s := &ContactService{notifier: n, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) error {
	if isEmptySubmission(in.Fields) {
		return newError(ErrorInvalidInput, "empty_submission", nil)
	}

	if s.verifier != nil {
		token := strings.TrimSpace(in.RecaptchaToken)
		if token == "" {
			return newError(ErrorInvalidInput, "missing_recaptcha_token", nil)
		}
		v, err := s.verifier.Verify(ctx, token)
		if err != nil {
			if status, ok := upstreamStatusCode(err); ok && status == http.StatusTooManyRequests {
				return newError(ErrorRateLimited, "recaptcha_rate_limited", err)
			}
			return newError(ErrorVerificationFailed, "recaptcha_unavailable", err)
		}
		if !v.Accepted {
			slog.Info("contact submission rejected by verification", "score", v.Score)
			return newError(ErrorVerificationFailed, "recaptcha_rejected", nil)
		}
	}

	form := strings.TrimSpace(in.Form)
	if form == "" {
		form = defaultFormName
	}
	html, err := renderNotification(form, in.Fields, s.now())
	if err != nil {
		return newError(ErrorInternal, "email_render_error", err)
	}

	err = s.notifier.Send(ctx, domain.Notification{
		To:      s.recipient,
		Subject: "New Form Submission: " + form,
		HTML:    html,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			return newError(ErrorInternal, "email_misconfigured", err)
		}
		return newError(ErrorUpstream, "email_provider_error", err)
	}
	slog.Info("contact submission delivered", "form", form, "fields", len(in.Fields))
	return nil
}

func isEmptySubmission(fields []domain.ContactField) bool {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			return false
		}
	}
	return true
}

type notificationRow struct {
	Label string
	Value string
}

type notificationView struct {
	Form      string
	Date      string
	FullName  string
	Email     string
	EmailLink string
	Subject   string
	Message   string
	Extra     []notificationRow
}

// renderNotification builds the email body. Repeated fields keep their first
// position and their last value.
func renderNotification(form string, fields []domain.ContactField, now time.Time) (string, error) {
	values := map[string]string{}
	var order []string
	for _, f := range fields {
		key := strings.TrimSpace(f.Field)
		if key == "" {
			continue
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = strings.TrimSpace(f.Value)
	}

	pick := func(keys ...string) string {
		for _, k := range keys {
			if v := values[k]; v != "" {
				return v
			}
		}
		return notAvailable
	}

	view := notificationView{
		Form:     form,
		Date:     now.Format("January 2, 2006"),
		FullName: pick("full-name", "name"),
		Email:    pick("email"),
		Subject:  pick("subject"),
		Message:  pick("message"),
	}
	if view.Email != notAvailable {
		view.EmailLink = "mailto:" + view.Email
	}
	for _, key := range order {
		switch key {
		case "full-name", "email", "subject", "message":
			continue
		}
		view.Extra = append(view.Extra, notificationRow{Label: strings.ReplaceAll(key, "-", " "), Value: values[key]})
	}

	var buf bytes.Buffer
	if err := notificationTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func upstreamStatusCode(err error) (int, bool) {
	var coder httpStatusCoder
	if !errors.As(err, &coder) {
		return 0, false
	}
	return coder.HTTPStatusCode(), true
}
