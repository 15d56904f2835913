package signin

import (
	"context"
	"strings"

	"github.com/tawashy/next-auth/pkg/logger"
)

// NormalizeEmail lower-cases a submitted address. A nil input yields "".
//
// The local part is technically case sensitive, but treating addresses as
// case sensitive causes far more trouble than it prevents.
func NormalizeEmail(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.ToLower(*raw)
}

// initiateEmail runs the email sign-in flow: adapter check, normalization,
// profile lookup, gate, dispatch. Every path returns one redirect target.
func (s *Service) initiateEmail(ctx context.Context, rawEmail *string, provider Provider, opts Options) string {
	if s.adapters == nil {
		s.logger.ErrorContext(ctx, "email sign-in requires an adapter",
			logger.Event(TagEmailRequiresAdapter),
			logger.Provider(provider.ID),
		)
		return errorURL(opts.BaseURL, CodeConfiguration)
	}

	adapter, err := s.adapters.Adapter(ctx, opts)
	if err == nil && adapter == nil {
		err = ErrNilAdapter
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to obtain adapter",
			logger.Event(TagAdapterError),
			logger.Provider(provider.ID),
			logger.Error(err),
		)
		return errorURL(opts.BaseURL, CodeConfiguration)
	}
	adapter = wrapAdapter(adapter, s.logger)

	email := NormalizeEmail(rawEmail)

	profile, err := s.resolveProfile(ctx, adapter, email)
	if err != nil {
		return errorURL(opts.BaseURL, CodeEmailSignin)
	}
	account := Account{
		ID:                provider.ID,
		Type:              AccountTypeEmail,
		ProviderAccountID: email,
	}

	verdict := s.gate.Authorize(ctx, profile, account, CallbackContext{
		Email:               email,
		VerificationRequest: true,
	})
	if target, stop := s.verdictRedirect(ctx, verdict, opts); stop {
		return target
	}

	if s.mailer == nil {
		s.logEmailFailure(ctx, provider, ErrNoEmailSender)
		return errorURL(opts.BaseURL, CodeEmailSignin)
	}
	if err := s.mailer.SendSignInEmail(ctx, email, provider, opts); err != nil {
		s.logEmailFailure(ctx, provider, err)
		return errorURL(opts.BaseURL, CodeEmailSignin)
	}

	return opts.BaseURL + "/verify-request?provider=" + encodeURIComponent(provider.ID) +
		"&type=" + encodeURIComponent(string(provider.Type))
}

// resolveProfile returns the stored user for email, or a placeholder.
// An absent email never matches a stored user, so no lookup is made.
func (s *Service) resolveProfile(ctx context.Context, adapter Adapter, email string) (Profile, error) {
	if email == "" {
		return Profile{}, nil
	}
	user, err := adapter.GetUserByEmail(ctx, email)
	if err != nil {
		return Profile{}, err
	}
	if user == nil {
		return Profile{Email: email}, nil
	}
	return *user, nil
}

// verdictRedirect maps a gate verdict to its terminal redirect.
// stop is false only for OutcomeProceed.
func (s *Service) verdictRedirect(ctx context.Context, v Verdict, opts Options) (target string, stop bool) {
	switch v.Outcome {
	case OutcomeProceed:
		return "", false
	case OutcomeDeny:
		return errorURL(opts.BaseURL, CodeAccessDenied), true
	case OutcomeRedirect:
		return v.Target, true
	case OutcomeRejected:
		return errorURL(opts.BaseURL, v.Message), true
	case OutcomeLegacyRejected:
		// TODO: drop with RejectRedirect in the next major release.
		s.logger.WarnContext(ctx, "sign-in callback rejected with a redirect target; return an error instead",
			logger.Event(TagCallbackRejectRedirect),
			logger.Provider(opts.Provider.ID),
		)
		return v.Target, true
	default:
		return errorURL(opts.BaseURL, CodeAccessDenied), true
	}
}

func (s *Service) logEmailFailure(ctx context.Context, p Provider, err error) {
	s.logger.ErrorContext(ctx, "email sign-in failed",
		logger.Event(TagEmailSignin),
		logger.Provider(p.ID),
		logger.Error(err),
	)
}
