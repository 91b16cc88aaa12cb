package mailer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/infra/httpclient"
)

func newTestResend(t *testing.T, status int, body string) (Mailer, *httpclient.SendEmailRequest) {
	t.Helper()
	got := &httpclient.SendEmailRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := &httpclient.ResendClient{
		BaseURL:    srv.URL,
		APIKey:     "re_test",
		HTTPClient: srv.Client(),
		Logger:     zap.NewNop(),
	}
	return NewResend(client), got
}

func TestResendMailer_Send(t *testing.T) {
	m, got := newTestResend(t, http.StatusOK, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`)

	res, err := m.Send(context.Background(), Message{
		From:    "Founder Flow <onboarding@resend.dev>",
		To:      []string{"a@b.co"},
		Subject: ResetSubject,
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", res.ID)
	assert.Equal(t, []string{"a@b.co"}, got.To)
	assert.Equal(t, "Reset your password", got.Subject)
}

func TestResendMailer_ProviderError(t *testing.T) {
	m, _ := newTestResend(t, http.StatusUnprocessableEntity,
		`{"statusCode":422,"name":"validation_error","message":"Invalid to field."}`)

	_, err := m.Send(context.Background(), Message{To: []string{"nope"}})
	require.Error(t, err)

	var apiErr *httpclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Invalid to field.", err.Error())
}

func TestResetPasswordHTML(t *testing.T) {
	html, err := ResetPasswordHTML(`https://app.example.com/reset?token=a"b&x=1`, "")
	require.NoError(t, err)

	assert.Contains(t, html, "Reset Password")
	assert.Contains(t, html, "If you didn't request this, you can safely ignore this email.")
	assert.NotContains(t, html, `a"b`)
	assert.NotContains(t, html, "<img")
}

func TestInvitationHTML(t *testing.T) {
	html, err := InvitationHTML("<Ada>", "member", "https://app.example.com/auth")
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;Ada&gt;")
	assert.Contains(t, html, "https://app.example.com/auth")
}

type stubMailer struct{ err error }

func (s stubMailer) Send(context.Context, Message) (*SendResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &SendResult{ID: "1"}, nil
}

func TestWithMetrics(t *testing.T) {
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "emails_sent_total"}, []string{"kind", "outcome"})

	ok := WithMetrics(stubMailer{}, sent)
	_, _ = ok.Send(WithKind(context.Background(), "reset"), Message{})
	failing := WithMetrics(stubMailer{err: errors.New("down")}, sent)
	_, _ = failing.Send(context.Background(), Message{})

	assert.Equal(t, 1.0, testutil.ToFloat64(sent.WithLabelValues("reset", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sent.WithLabelValues("other", "error")))
}
