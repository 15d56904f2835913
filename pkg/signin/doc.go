// Package signin decides where a "begin sign-in" request goes.
//
// Service.Dispatch receives a Request naming a Provider and returns exactly
// one redirect target:
//
//   - oauth providers on POST are sent to the URL produced by the
//     AuthorizationURLBuilder, or to <base>/error?error=OAuthSignin;
//   - email providers on POST look the user up through the Adapter, ask
//     the application Callback for permission, send the link through the
//     EmailSender and land on <base>/verify-request;
//   - everything else lands on <base>/signin.
//
// The only non-redirect outcome is a *ConfigurationError for a provider
// without a type, which the HTTP surface answers with a plain-text 500.
//
// The base URL is computed by ResolveBaseURL. In multi-tenant mode it trusts
// the Host, Referer and X-Forwarded-Proto headers; run it only behind a
// proxy that sets them.
//
// # Callback contract
//
// A Callback returns a Decision and an error. Each invocation is classified
// into one Verdict:
//
//	Deny()              -> <base>/error?error=AccessDenied
//	RedirectTo(url)     -> url, verbatim
//	Allow(), Decision{} -> continue to email dispatch
//	non-nil error       -> <base>/error?error=<message>
//	RejectRedirect(url) -> url, verbatim, logged as deprecated
//
// Panics inside the callback are recovered: error values behave like a
// returned error, other values like RejectRedirect.
//
// RedirectTo and RejectRedirect targets are not validated. A callback that
// builds them from user input creates an open redirect.
//
// # Example
//
//	svc := signin.NewService(cfg,
//		signin.WithLogger(log),
//		signin.WithAuthorizationURLBuilder(oauthBuilder),
//		signin.WithAdapter(users),
//		signin.WithEmailSender(mailer),
//		signin.WithCallback(signin.AllowEmailDomains("example.com")),
//	)
//	r.Post("/api/auth/signin/{provider}", signin.NewHandler(svc, registry,
//		signin.WithProviderParam(func(r *http.Request) string { return chi.URLParam(r, "provider") }),
//	))
package signin
