package signin

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tawashy/next-auth/pkg/logger"
)

// AuthorizationURLBuilder starts an OAuth handshake and returns the
// provider URL the user must visit.
type AuthorizationURLBuilder interface {
	AuthorizationURL(ctx context.Context, req Request, opts Options) (string, error)
}

// EmailSender delivers the sign-in link for email providers.
type EmailSender interface {
	SendSignInEmail(ctx context.Context, email string, provider Provider, opts Options) error
}

// Service decides where a "begin sign-in" request ends up.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	cfg      Config
	oauth    AuthorizationURLBuilder
	adapters AdapterFactory
	mailer   EmailSender
	gate     *Gate
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for classified failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAuthorizationURLBuilder sets the OAuth collaborator.
func WithAuthorizationURLBuilder(b AuthorizationURLBuilder) Option {
	return func(s *Service) { s.oauth = b }
}

// WithAdapter sets a fixed storage adapter.
func WithAdapter(a Adapter) Option {
	return func(s *Service) {
		if a != nil {
			s.adapters = StaticAdapter(a)
		}
	}
}

// WithAdapterFactory sets a storage adapter resolved per request.
func WithAdapterFactory(f AdapterFactory) Option {
	return func(s *Service) { s.adapters = f }
}

// WithEmailSender sets the email dispatch collaborator.
func WithEmailSender(m EmailSender) Option {
	return func(s *Service) { s.mailer = m }
}

// WithCallback sets the sign-in callback consulted before sending email.
func WithCallback(cb Callback) Option {
	return func(s *Service) { s.gate = NewGate(cb) }
}

// NewService builds a Service. Without WithCallback every attempt is allowed.
func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		gate:   NewGate(nil),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the static configuration the service was built with.
func (s *Service) Config() Config { return s.cfg }

// Dispatch routes req to the matching handshake and returns the redirect
// target. The only error it returns is *ConfigurationError, for a provider
// without a type; every other failure is turned into an error-page redirect.
func (s *Service) Dispatch(ctx context.Context, req Request) (string, error) {
	baseURL := ResolveBaseURL(s.cfg, req)
	provider := req.Provider

	if provider.Type == "" {
		s.logger.ErrorContext(ctx, "provider type not specified",
			logger.Event(TagMissingProviderType),
			logger.Provider(provider.ID),
		)
		return "", &ConfigurationError{ProviderName: provider.Name, Err: ErrProviderTypeMissing}
	}

	opts := Options{BaseURL: baseURL, Provider: provider}
	post := strings.EqualFold(req.Method, http.MethodPost)

	switch {
	case provider.Type == TypeOAuth && post:
		return s.initiateOAuth(ctx, req, opts), nil
	case provider.Type == TypeEmail && post:
		return s.initiateEmail(ctx, req.Email, provider, opts), nil
	default:
		return baseURL + "/signin", nil
	}
}

// errorURL builds the error page URL for code.
func errorURL(baseURL, code string) string {
	return baseURL + "/error?error=" + encodeURIComponent(code)
}

// uriComponentUnescaper turns url.QueryEscape output into the
// encodeURIComponent form: spaces as %20 and !'()* left literal.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s for use in a query value.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
