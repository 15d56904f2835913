package signin

import "time"

// ProviderType names the handshake family a provider belongs to.
type ProviderType string

// Provider types handled by the dispatcher. Any other value is passed
// through and lands on the generic sign-in page.
const (
	TypeOAuth       ProviderType = "oauth"
	TypeEmail       ProviderType = "email"
	TypeCredentials ProviderType = "credentials"
)

// AccountTypeEmail is the account type recorded for email sign-in attempts.
const AccountTypeEmail = "email"

// Provider is a configured authentication method.
// It is owned by the surrounding configuration and read-only here.
type Provider struct {
	ID   string
	Name string
	Type ProviderType
}

// Request is the projection of an inbound sign-in request the core works on.
type Request struct {
	Method   string
	Provider Provider

	// Email is the raw submitted form value, nil when the field was absent.
	Email *string

	// Host, ForwardedProto and Referer feed the multi-tenant base URL.
	Host           string
	ForwardedProto string
	Referer        string

	// AuthorizationParams are extra query parameters forwarded to the
	// provider's authorization endpoint (login_hint, prompt, ...).
	AuthorizationParams map[string]string
}

// Options is the per-request view handed to collaborators.
type Options struct {
	// BaseURL is the resolved origin plus base path, without a trailing slash.
	BaseURL  string
	Provider Provider
}

// Profile is either a stored user or a placeholder carrying only the email.
type Profile struct {
	ID            string
	Email         string
	Name          string
	Image         string
	EmailVerified *time.Time
}

// Account describes the identity being signed in with. It is built fresh
// for every request and never persisted by this package.
type Account struct {
	ID                string
	Type              string
	ProviderAccountID string
}

// CallbackContext tells the sign-in callback that this is an email link
// request rather than a completed credential exchange.
type CallbackContext struct {
	Email               string
	VerificationRequest bool
}
