package recaptcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/integrations/paramstore"
)

type fakeGetter struct {
	val string
	err error
}

func (f *fakeGetter) GetParameter(_ context.Context, _ string) (string, error) {
	return f.val, f.err
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithVerifyURL(srv.URL + "/recaptcha/api/siteverify"),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	}, opts...)
	c, err := NewClient(paramstore.NewSecret("site-secret", nil, ""), opts...)
	require.NoError(t, err)
	return c
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient_RequiresSecret(t *testing.T) {
	_, err := NewClient(paramstore.NewSecret("", nil, ""))
	require.Error(t, err)
	require.Contains(t, err.Error(), "secret")

	_, err = NewClient(nil)
	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(paramstore.NewSecret("s", nil, ""), WithMinScore(7))
	require.NoError(t, err)
	require.Equal(t, defaultVerifyURL, c.verifyURL)
	require.Equal(t, DefaultMinScore, c.minScore)
}

func TestVerify_SendsFormEncodedSecretAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/recaptcha/api/siteverify", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "site-secret", r.PostForm.Get("secret"))
		require.Equal(t, "tok-123", r.PostForm.Get("response"))
		_, _ = w.Write([]byte(`{"success":true,"score":0.9,"action":"submit"}`))
	}))
	defer srv.Close()

	v, err := newTestClient(t, srv).Verify(context.Background(), " tok-123 ")
	require.NoError(t, err)
	require.True(t, v.Accepted)
	require.InDelta(t, 0.9, v.Score, 1e-9)
}

func TestVerify_Decisions(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		minScore float64
		accepted bool
		score    float64
	}{
		{name: "at threshold", body: `{"success":true,"score":0.5}`, accepted: true, score: 0.5},
		{name: "below threshold", body: `{"success":true,"score":0.3}`, accepted: false, score: 0.3},
		{name: "google rejected", body: `{"success":false,"score":0.9,"error-codes":["timeout-or-duplicate"]}`, accepted: false, score: 0.9},
		{name: "no score", body: `{"success":true}`, accepted: false, score: 0},
		{name: "custom threshold", body: `{"success":true,"score":0.6}`, minScore: 0.7, accepted: false, score: 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(respondWith(http.StatusOK, tc.body))
			defer srv.Close()

			var opts []Option
			if tc.minScore > 0 {
				opts = append(opts, WithMinScore(tc.minScore))
			}
			v, err := newTestClient(t, srv, opts...).Verify(context.Background(), "tok")
			require.NoError(t, err)
			require.Equal(t, tc.accepted, v.Accepted)
			require.InDelta(t, tc.score, v.Score, 1e-9)
		})
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	c, err := NewClient(paramstore.NewSecret("s", nil, ""))
	require.NoError(t, err)
	_, err = c.Verify(context.Background(), "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "token")
}

func TestVerify_Non200(t *testing.T) {
	srv := httptest.NewServer(respondWith(http.StatusServiceUnavailable, `unavailable`))
	defer srv.Close()

	_, err := newTestClient(t, srv).Verify(context.Background(), "tok")
	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusServiceUnavailable, statusErr.HTTPStatusCode())
	require.Contains(t, err.Error(), "unavailable")
}

func TestVerify_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(respondWith(http.StatusOK, `not-a-json`))
	defer srv.Close()

	_, err := newTestClient(t, srv).Verify(context.Background(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestVerify_NetworkError(t *testing.T) {
	c, err := NewClient(paramstore.NewSecret("s", nil, ""),
		WithVerifyURL("http://127.0.0.1:1/siteverify"),
		WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}),
	)
	require.NoError(t, err)
	_, err = c.Verify(context.Background(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")
}

func TestVerify_SecretFromParamStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "from-ssm", r.PostForm.Get("secret"))
		_, _ = w.Write([]byte(`{"success":true,"score":0.7}`))
	}))
	defer srv.Close()

	secret := paramstore.NewSecret("", &fakeGetter{val: `{"token":"from-ssm"}`}, "/portfolio/recaptcha-secret")
	c, err := NewClient(secret, WithVerifyURL(srv.URL))
	require.NoError(t, err)
	v, err := c.Verify(context.Background(), "tok")
	require.NoError(t, err)
	require.True(t, v.Accepted)
}

func TestVerify_SecretResolveError(t *testing.T) {
	secret := paramstore.NewSecret("", &fakeGetter{err: errors.New("ssm unavailable")}, "/portfolio/recaptcha-secret")
	c, err := NewClient(secret)
	require.NoError(t, err)
	_, err = c.Verify(context.Background(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ssm unavailable")
}
