package signin

import (
	"context"

	"github.com/tawashy/next-auth/pkg/logger"
)

// initiateOAuth asks the builder for the provider URL exactly once.
// Any failure lands on the OAuthSignin error page; there is no retry.
func (s *Service) initiateOAuth(ctx context.Context, req Request, opts Options) string {
	if s.oauth == nil {
		s.logOAuthFailure(ctx, opts.Provider, ErrNoAuthorizationURLBuilder)
		return errorURL(opts.BaseURL, CodeOAuthSignin)
	}

	authURL, err := s.oauth.AuthorizationURL(ctx, req, opts)
	if err != nil {
		s.logOAuthFailure(ctx, opts.Provider, err)
		return errorURL(opts.BaseURL, CodeOAuthSignin)
	}
	return authURL
}

func (s *Service) logOAuthFailure(ctx context.Context, p Provider, err error) {
	s.logger.ErrorContext(ctx, "oauth sign-in failed",
		logger.Event(TagOAuthSignin),
		logger.Provider(p.ID),
		logger.Error(err),
	)
}
