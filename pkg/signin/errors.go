package signin

import (
	"errors"
	"fmt"
)

// Classification tags attached to log records under the "event" key.
const (
	TagMissingProviderType    = "MISSING_PROVIDER_TYPE"
	TagOAuthSignin            = "SIGNIN_OAUTH_ERROR"
	TagEmailRequiresAdapter   = "EMAIL_REQUIRES_ADAPTER_ERROR"
	TagEmailSignin            = "SIGNIN_EMAIL_ERROR"
	TagAdapterError           = "ADAPTER_ERROR"
	TagCallbackRejectRedirect = "SIGNIN_CALLBACK_REJECT_REDIRECT"
)

// Error codes placed in the error page query string.
const (
	CodeOAuthSignin   = "OAuthSignin"
	CodeEmailSignin   = "EmailSignin"
	CodeConfiguration = "Configuration"
	CodeAccessDenied  = "AccessDenied"
)

var (
	ErrProviderTypeMissing       = errors.New("signin: provider type not specified")
	ErrNoAuthorizationURLBuilder = errors.New("signin: no authorization url builder configured")
	ErrNoEmailSender             = errors.New("signin: no email sender configured")
	ErrNilAdapter                = errors.New("signin: adapter factory returned nil adapter")
)

// ConfigurationError is returned by Dispatch when the provider carries no
// type. No redirect target can be derived in that case, so the caller must
// answer with a server error instead of a redirect.
type ConfigurationError struct {
	ProviderName string
	Err          error
}

func (e *ConfigurationError) Error() string {
	return "Error: Type not specified for " + e.ProviderName
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AdapterError wraps a failure raised by a storage adapter method.
type AdapterError struct {
	Method string
	Err    error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("signin: adapter %s: %v", e.Method, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }
