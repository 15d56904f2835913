package oauth

import (
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

var wellKnown = map[string]oauth2.Endpoint{
	"github": github.Endpoint,
	"google": google.Endpoint,
}

// endpointFor resolves the token and authorization endpoints of pc.
func endpointFor(pc ProviderConfig) (oauth2.Endpoint, error) {
	if pc.Endpoint != "" {
		ep, ok := wellKnown[strings.ToLower(pc.Endpoint)]
		if !ok {
			return oauth2.Endpoint{}, ErrUnknownEndpoint
		}
		return ep, nil
	}
	if pc.AuthURL == "" || pc.TokenURL == "" {
		return oauth2.Endpoint{}, ErrMissingEndpoint
	}
	return oauth2.Endpoint{AuthURL: pc.AuthURL, TokenURL: pc.TokenURL}, nil
}
