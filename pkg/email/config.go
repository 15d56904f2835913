package email

import "time"

// Config holds transport settings. The Postmark tokens may be empty when the
// dev mailer is used.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@localhost"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:".mail"`
}

// SignInConfig holds settings for sign-in links.
type SignInConfig struct {
	Secret  string        `env:"AUTH_SECRET,required"`
	LinkTTL time.Duration `env:"AUTH_EMAIL_LINK_TTL" envDefault:"24h"`
	Subject string        `env:"AUTH_EMAIL_SUBJECT" envDefault:"Sign in"`
}
