package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/tawashy/next-auth/pkg/logger"
	"github.com/tawashy/next-auth/pkg/signin"
)

var _ signin.EmailSender = (*SignInSender)(nil)

// SignInSender emails sign-in links. It implements signin.EmailSender.
type SignInSender struct {
	mailer Mailer
	cfg    SignInConfig
	logger *slog.Logger
	now    func() time.Time
}

// SignInOption configures a SignInSender.
type SignInOption func(*SignInSender)

// WithLogger sets the sender's logger.
func WithLogger(l *slog.Logger) SignInOption {
	return func(s *SignInSender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for link expiry.
func WithClock(now func() time.Time) SignInOption {
	return func(s *SignInSender) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSignInSender creates a SignInSender delivering through mailer.
func NewSignInSender(mailer Mailer, cfg SignInConfig, opts ...SignInOption) (*SignInSender, error) {
	if mailer == nil {
		return nil, fmt.Errorf("%w: mailer is required", ErrInvalidConfig)
	}
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = 24 * time.Hour
	}
	if cfg.Subject == "" {
		cfg.Subject = "Sign in"
	}

	s := &SignInSender{
		mailer: mailer,
		cfg:    cfg,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SendSignInEmail sends a link to <base>/callback/<provider id> carrying the
// address and a signed, expiring token.
func (s *SignInSender) SendSignInEmail(ctx context.Context, email string, provider signin.Provider, opts signin.Options) error {
	if email == "" {
		return ErrMissingRecipient
	}

	link, err := s.SignInLink(email, provider, opts)
	if err != nil {
		return err
	}
	site := opts.BaseURL
	if u, err := url.Parse(opts.BaseURL); err == nil && u.Host != "" {
		site = u.Host
	}
	body, err := render(ctx, signInBody(link, site))
	if err != nil {
		return fmt.Errorf("render sign-in email: %w", err)
	}

	if err := s.mailer.Send(ctx, Message{
		To:      email,
		Subject: s.cfg.Subject,
		HTML:    body,
		Tag:     "signin",
	}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "sign-in email sent",
		logger.Provider(provider.ID),
		logger.Component("email"),
	)
	return nil
}

// SignInLink builds the callback URL embedded in the email.
func (s *SignInSender) SignInLink(email string, provider signin.Provider, opts signin.Options) (string, error) {
	token, err := IssueSignInToken(s.cfg.Secret, SignInToken{
		Email:     email,
		Provider:  provider.ID,
		ExpiresAt: s.now().Add(s.cfg.LinkTTL).Unix(),
		Nonce:     uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	q := url.Values{"email": {email}, "token": {token}}
	return opts.BaseURL + "/callback/" + url.PathEscape(provider.ID) + "?" + q.Encode(), nil
}
