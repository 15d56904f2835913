package email_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tawashy/next-auth/pkg/email"
	"github.com/tawashy/next-auth/pkg/signin"
)

const secret = "test-secret"

var (
	magicLink = signin.Provider{ID: "magic link", Name: "Email", Type: signin.TypeEmail}
	opts      = signin.Options{BaseURL: "https://auth.example.com/api/auth", Provider: magicLink}
	fixedNow  = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
)

func newSender(t *testing.T, mailer email.Mailer) *email.SignInSender {
	t.Helper()
	s, err := email.NewSignInSender(mailer, email.SignInConfig{Secret: secret, LinkTTL: time.Hour, Subject: "Sign in to Example"},
		email.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)
	return s
}

func TestSignInSender_SendSignInEmail(t *testing.T) {
	t.Parallel()

	var sent email.Message
	mailer := &MockMailer{}
	mailer.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(email.Message) }).
		Return(nil).Once()

	err := newSender(t, mailer).SendSignInEmail(context.Background(), "foo@bar.com", magicLink, opts)
	require.NoError(t, err)
	mailer.AssertExpectations(t)

	assert.Equal(t, "foo@bar.com", sent.To)
	assert.Equal(t, "Sign in to Example", sent.Subject)
	assert.Equal(t, "signin", sent.Tag)
	assert.Contains(t, sent.HTML, "auth.example.com")
	assert.Contains(t, sent.HTML, "https://auth.example.com/api/auth/callback/magic%20link?email=foo%40bar.com&amp;token=")
}

func TestSignInSender_LinkRoundTrip(t *testing.T) {
	t.Parallel()

	s := newSender(t, &MockMailer{})
	link, err := s.SignInLink("foo@bar.com", magicLink, opts)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/callback/magic link", u.Path)
	assert.Equal(t, "foo@bar.com", u.Query().Get("email"))

	tok, err := email.VerifySignInToken(secret, u.Query().Get("token"), fixedNow.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "foo@bar.com", tok.Email)
	assert.Equal(t, "magic link", tok.Provider)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), tok.ExpiresAt)
	assert.NotEmpty(t, tok.Nonce)

	other, err := s.SignInLink("foo@bar.com", magicLink, opts)
	require.NoError(t, err)
	assert.NotEqual(t, link, other)
}

func TestSignInSender_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty recipient", func(t *testing.T) {
		t.Parallel()

		mailer := &MockMailer{}
		err := newSender(t, mailer).SendSignInEmail(context.Background(), "", magicLink, opts)
		assert.ErrorIs(t, err, email.ErrMissingRecipient)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("mailer failure", func(t *testing.T) {
		t.Parallel()

		mailer := &MockMailer{}
		mailer.On("Send", mock.Anything, mock.Anything).Return(email.ErrFailedToSendEmail)
		err := newSender(t, mailer).SendSignInEmail(context.Background(), "a@b.c", magicLink, opts)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})

	t.Run("constructor", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewSignInSender(nil, email.SignInConfig{Secret: secret})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		_, err = email.NewSignInSender(&MockMailer{}, email.SignInConfig{})
		assert.ErrorIs(t, err, email.ErrMissingSecret)
	})
}

func TestVerifySignInToken(t *testing.T) {
	t.Parallel()

	valid, err := email.IssueSignInToken(secret, email.SignInToken{
		Email:     "a@b.c",
		Provider:  "email",
		ExpiresAt: fixedNow.Unix(),
		Nonce:     "n",
	})
	require.NoError(t, err)
	payload, sig, _ := strings.Cut(valid, ".")

	tests := []struct {
		name   string
		secret string
		raw    string
		now    time.Time
		want   error
	}{
		{name: "valid", secret: secret, raw: valid, now: fixedNow.Add(-time.Second)},
		{name: "expired at the deadline", secret: secret, raw: valid, now: fixedNow, want: email.ErrTokenExpired},
		{name: "wrong secret", secret: "other", raw: valid, now: fixedNow.Add(-time.Second), want: email.ErrInvalidToken},
		{name: "no separator", secret: secret, raw: payload, now: fixedNow, want: email.ErrInvalidToken},
		{name: "tampered payload", secret: secret, raw: "e30." + sig, now: fixedNow, want: email.ErrInvalidToken},
		{name: "bad encoding", secret: secret, raw: "!!!." + sig, now: fixedNow, want: email.ErrInvalidToken},
		{name: "empty secret", secret: "", raw: valid, now: fixedNow, want: email.ErrMissingSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok, err := email.VerifySignInToken(tt.secret, tt.raw, tt.now)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.c", tok.Email)
		})
	}
}
