package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("email: failed to send email")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrInvalidMessage    = errors.New("email: invalid message")
	ErrMissingRecipient  = errors.New("email: recipient address is empty")
	ErrMissingSecret     = errors.New("email: sign-in token secret is empty")
	ErrInvalidToken      = errors.New("email: invalid sign-in token")
	ErrTokenExpired      = errors.New("email: sign-in token expired")
)
