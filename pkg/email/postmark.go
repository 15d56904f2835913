package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mrz1836/postmark"
)

// PostmarkMailer sends messages through the Postmark API.
type PostmarkMailer struct {
	client *postmark.Client
	cfg    Config
}

// PostmarkOption configures a PostmarkMailer.
type PostmarkOption func(*PostmarkMailer)

// WithPostmarkBaseURL points the client at another API root.
func WithPostmarkBaseURL(u string) PostmarkOption {
	return func(m *PostmarkMailer) { m.client.BaseURL = u }
}

// NewPostmarkMailer validates cfg and creates a Postmark-backed Mailer.
func NewPostmarkMailer(cfg Config, opts ...PostmarkOption) (*PostmarkMailer, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(cfg.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.SupportEmail != "" {
		if _, err := mail.ParseAddress(cfg.SupportEmail); err != nil {
			return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
		}
	}

	m := &PostmarkMailer{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Send delivers msg. Link tracking is off so sign-in links reach the user
// unmodified.
func (m *PostmarkMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:       m.cfg.SenderEmail,
		ReplyTo:    m.cfg.SupportEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TrackOpens: false,
		TrackLinks: "None",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
