package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/domain"
)

type mockNotifier struct {
	sent []domain.Notification
	err  error
}

func (m *mockNotifier) Send(_ context.Context, n domain.Notification) error {
	m.sent = append(m.sent, n)
	return m.err
}

type mockVerifier struct {
	result domain.Verification
	err    error
	tokens []string
}

func (m *mockVerifier) Verify(_ context.Context, token string) (domain.Verification, error) {
	m.tokens = append(m.tokens, token)
	return m.result, m.err
}

type statusErr struct{ code int }

func (e statusErr) Error() string       { return fmt.Sprintf("status %d", e.code) }
func (e statusErr) HTTPStatusCode() int { return e.code }

func expectUsecaseError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	require.Equal(t, reason, usecaseErr.Reason)
}

func contactFields() []domain.ContactField {
	return []domain.ContactField{
		{Field: "full-name", Value: "Ada Lovelace"},
		{Field: "email", Value: "ada@example.com"},
		{Field: "subject", Value: "Consulting"},
		{Field: "company", Value: "Analytical Engines"},
		{Field: "message", Value: "Let's talk about ML."},
	}
}

func newTestContactService(t *testing.T, n Notifier, opts ...ContactOption) *ContactService {
	t.Helper()
	svc, err := NewContactService(n, append([]ContactOption{WithRecipient("owner@example.com")}, opts...)...)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestNewContactService_ValidatesDependencies(t *testing.T) {
	_, err := NewContactService(nil)
	require.Error(t, err)
}

func TestSubmit_HappyPath(t *testing.T) {
	n := &mockNotifier{}
	v := &mockVerifier{result: domain.Verification{Accepted: true, Score: 0.9}}
	svc := newTestContactService(t, n, WithVerifier(v))

	err := svc.Submit(context.Background(), ContactInput{Form: "contact-form", Fields: contactFields(), RecaptchaToken: " tok "})
	require.NoError(t, err)
	require.Equal(t, []string{"tok"}, v.tokens)
	require.Len(t, n.sent, 1)
	require.Equal(t, "owner@example.com", n.sent[0].To)
	require.Equal(t, "New Form Submission: contact-form", n.sent[0].Subject)

	html := n.sent[0].HTML
	for _, want := range []string{"Ada Lovelace", "ada@example.com", "mailto:ada@example.com", "Consulting", "Analytical Engines", "March 7, 2025", "contact-form"} {
		require.Contains(t, html, want)
	}
}

func TestSubmit_DefaultFormName(t *testing.T) {
	n := &mockNotifier{}
	svc := newTestContactService(t, n)
	require.NoError(t, svc.Submit(context.Background(), ContactInput{Fields: contactFields()}))
	require.Equal(t, "New Form Submission: contact", n.sent[0].Subject)
}

func TestSubmit_EmptySubmission(t *testing.T) {
	n := &mockNotifier{}
	svc := newTestContactService(t, n)

	err := svc.Submit(context.Background(), ContactInput{})
	expectUsecaseError(t, err, ErrorInvalidInput, "empty_submission")

	err = svc.Submit(context.Background(), ContactInput{Fields: []domain.ContactField{{Field: "name", Value: "  "}}})
	expectUsecaseError(t, err, ErrorInvalidInput, "empty_submission")
	require.Empty(t, n.sent)
}

func TestSubmit_VerificationErrors(t *testing.T) {
	cases := []struct {
		name   string
		token  string
		v      *mockVerifier
		code   ErrorCode
		reason string
	}{
		{name: "missing token", token: " ", v: &mockVerifier{}, code: ErrorInvalidInput, reason: "missing_recaptcha_token"},
		{name: "verifier down", token: "tok", v: &mockVerifier{err: errors.New("dial tcp")}, code: ErrorVerificationFailed, reason: "recaptcha_unavailable"},
		{name: "verifier rate limited", token: "tok", v: &mockVerifier{err: statusErr{code: 429}}, code: ErrorRateLimited, reason: "recaptcha_rate_limited"},
		{name: "verifier 5xx", token: "tok", v: &mockVerifier{err: statusErr{code: 503}}, code: ErrorVerificationFailed, reason: "recaptcha_unavailable"},
		{name: "low score", token: "tok", v: &mockVerifier{result: domain.Verification{Accepted: false, Score: 0.2}}, code: ErrorVerificationFailed, reason: "recaptcha_rejected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := &mockNotifier{}
			svc := newTestContactService(t, n, WithVerifier(tc.v))
			err := svc.Submit(context.Background(), ContactInput{Fields: contactFields(), RecaptchaToken: tc.token})
			expectUsecaseError(t, err, tc.code, tc.reason)
			require.Empty(t, n.sent, "nothing is sent for rejected submissions")
		})
	}
}

func TestSubmit_WithoutVerifierSkipsCheck(t *testing.T) {
	n := &mockNotifier{}
	svc := newTestContactService(t, n)
	require.NoError(t, svc.Submit(context.Background(), ContactInput{Fields: contactFields()}))
	require.Len(t, n.sent, 1)
}

func TestSubmit_NotifierErrors(t *testing.T) {
	svc := newTestContactService(t, &mockNotifier{err: fmt.Errorf("resend: %w", domain.ErrNotConfigured)})
	err := svc.Submit(context.Background(), ContactInput{Fields: contactFields()})
	expectUsecaseError(t, err, ErrorInternal, "email_misconfigured")

	svc = newTestContactService(t, &mockNotifier{err: errors.New("422 validation_error")})
	err = svc.Submit(context.Background(), ContactInput{Fields: contactFields()})
	expectUsecaseError(t, err, ErrorUpstream, "email_provider_error")
}

func TestRenderNotification_EscapesAndOrdersFields(t *testing.T) {
	fields := []domain.ContactField{
		{Field: "name", Value: "Grace"},
		{Field: "phone-number", Value: "123"},
		{Field: "message", Value: "<script>alert(1)</script>"},
		{Field: "phone-number", Value: "456"},
		{Field: "budget", Value: "10k"},
	}
	html, err := renderNotification("hire", fields, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Contains(t, html, "Grace")
	require.Contains(t, html, "December 31, 2024")
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
	require.Contains(t, html, "phone number")
	require.Contains(t, html, "456")
	require.NotContains(t, html, ">123<")
	require.Less(t, strings.Index(html, "phone number"), strings.Index(html, "budget"))
	require.NotContains(t, html, "mailto:", "no link without an email field")
	require.Contains(t, html, "N/A")
}
