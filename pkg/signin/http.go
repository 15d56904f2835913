package signin

import (
	"errors"
	"net/http"

	"github.com/tawashy/next-auth/handler"
)

// ProviderResolver looks up a configured provider by id.
type ProviderResolver interface {
	Provider(id string) (Provider, bool)
}

// form is the bound sign-in request.
type form struct {
	ProviderID string
	Email      *string
	Params     map[string]string
}

// HandlerOption configures NewHandler.
type HandlerOption func(*httpConfig)

type httpConfig struct {
	providerParam func(*http.Request) string
	redirectCode  int
}

// WithProviderParam sets how the provider id is read from the request.
// Defaults to the "provider" path value.
func WithProviderParam(fn func(*http.Request) string) HandlerOption {
	return func(c *httpConfig) {
		if fn != nil {
			c.providerParam = fn
		}
	}
}

// WithRedirectCode sets the status used for redirects. Defaults to 302.
func WithRedirectCode(code int) HandlerOption {
	return func(c *httpConfig) { c.redirectCode = code }
}

// NewHandler exposes svc as the "begin sign-in" HTTP endpoint.
// Unknown provider ids land on the generic sign-in page. A provider with no
// type is answered with a plain-text 500 instead of a redirect.
func NewHandler(svc *Service, providers ProviderResolver, opts ...HandlerOption) http.HandlerFunc {
	cfg := &httpConfig{
		providerParam: func(r *http.Request) string { return r.PathValue("provider") },
		redirectCode:  http.StatusFound,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	bind := func(r *http.Request, v any) error {
		f := v.(*form)
		f.ProviderID = cfg.providerParam(r)
		f.Params = authorizationParams(r)
		if r.Method != http.MethodPost {
			return nil
		}
		if err := r.ParseForm(); err != nil {
			return handler.ErrBadRequest
		}
		if vals, ok := r.PostForm["email"]; ok && len(vals) > 0 {
			email := vals[0]
			f.Email = &email
		}
		return nil
	}

	h := handler.HandlerFunc[handler.Context, form](func(ctx handler.Context, f form) handler.Response {
		r := ctx.Request()
		provider, ok := providers.Provider(f.ProviderID)
		req := Request{
			Method:              r.Method,
			Provider:            provider,
			Email:               f.Email,
			Host:                r.Host,
			ForwardedProto:      r.Header.Get("X-Forwarded-Proto"),
			Referer:             r.Referer(),
			AuthorizationParams: f.Params,
		}
		if !ok {
			return handler.RedirectWithCode(ResolveBaseURL(svc.Config(), req)+"/signin", cfg.redirectCode)
		}

		target, err := svc.Dispatch(ctx, req)
		if err != nil {
			var cfgErr *ConfigurationError
			if errors.As(err, &cfgErr) {
				return handler.Error(handler.NewHTTPError(http.StatusInternalServerError, cfgErr.Error()))
			}
			return handler.Error(err)
		}
		return handler.RedirectWithCode(target, cfg.redirectCode)
	})

	return handler.Wrap(h, handler.WithBinders[handler.Context, form](bind))
}

// authorizationParams copies single-valued query parameters, which are
// forwarded to the OAuth provider's authorization endpoint.
func authorizationParams(r *http.Request) map[string]string {
	q := r.URL.Query()
	if len(q) == 0 {
		return nil
	}
	params := make(map[string]string, len(q))
	for k, v := range q {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}
