package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/infra/mailer"
)

func TestInvitationSender_HandleMessage(t *testing.T) {
	m := &MockMailer{}
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0] == "mia@x.io" &&
			msg.Subject == mailer.InvitationSubject &&
			strings.Contains(msg.HTML, "https://app.example.com/auth")
	})).Return(&mailer.SendResult{ID: "msg_1"}, nil)

	s := NewInvitationSender(m, "Founder Flow <team@x.io>", "https://app.example.com/auth", zap.NewNop())
	err := s.HandleMessage(context.Background(), []byte(`{"email":"mia@x.io","full_name":"Mia","role":"member"}`))
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestInvitationSender_BadMessage(t *testing.T) {
	s := NewInvitationSender(&MockMailer{}, "from", "link", zap.NewNop())
	assert.Error(t, s.HandleMessage(context.Background(), []byte(`not json`)))
	assert.Error(t, s.HandleMessage(context.Background(), []byte(`{"full_name":"x"}`)))
}

func TestResetEmailService_Send(t *testing.T) {
	m := &MockMailer{}
	m.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		return mailer.KindFrom(ctx) == "reset"
	}), mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.Subject == mailer.ResetSubject && strings.Contains(msg.HTML, "https://app.example.com/reset-password?token=abc")
	})).Return(&mailer.SendResult{ID: "re_1"}, nil)

	res, err := NewResetEmailService(m, "from", "").Send(context.Background(), "ada@example.com", "https://app.example.com/reset-password?token=abc")
	require.NoError(t, err)
	assert.Equal(t, "re_1", res.ID)

	_, err = NewResetEmailService(m, "from", "").Send(context.Background(), "ada@example.com", "")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
