package signin

import "strings"

// Config holds the static settings of the sign-in endpoint.
type Config struct {
	// BaseURL is the public origin used in single-tenant mode.
	BaseURL string `env:"AUTH_URL" envDefault:"http://localhost:3000"`
	// BasePath is the mount point of the auth routes, e.g. "/api/auth".
	BasePath string `env:"AUTH_BASE_PATH" envDefault:"/api/auth"`
	// MultiTenant derives the origin from each request's Host header.
	// The scheme is then taken from Referer / X-Forwarded-Proto, so the
	// deployment must sit behind a proxy that sets those headers truthfully.
	MultiTenant bool `env:"AUTH_MULTI_TENANT" envDefault:"false"`
}

// ResolveBaseURL returns the origin plus base path every redirect is anchored to.
//
// In single-tenant mode it is cfg.BaseURL + cfg.BasePath and request headers
// are ignored. In multi-tenant mode the scheme is https when either the
// Referer's scheme or X-Forwarded-Proto is https, and http otherwise; the
// host comes from the Host header.
func ResolveBaseURL(cfg Config, req Request) string {
	if !cfg.MultiTenant {
		return cfg.BaseURL + cfg.BasePath
	}

	scheme := "http"
	if refererScheme(req.Referer) == "https" || forwardedProto(req.ForwardedProto) == "https" {
		scheme = "https"
	}
	return scheme + "://" + req.Host + cfg.BasePath
}

func refererScheme(referer string) string {
	if referer == "" {
		return ""
	}
	scheme, _, _ := strings.Cut(referer, "://")
	return scheme
}

// forwardedProto returns the first entry of a possibly comma-separated
// X-Forwarded-Proto value, as appended by proxy chains.
func forwardedProto(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}
