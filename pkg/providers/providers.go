// Package providers loads the catalogue of sign-in providers from YAML.
//
//	providers:
//	  - id: github
//	    name: GitHub
//	    type: oauth
//	    oauth:
//	      client_id: ${GITHUB_CLIENT_ID}
//	      client_secret: ${GITHUB_CLIENT_SECRET}
//	      endpoint: github
//	      scopes: [read:user, user:email]
//	  - id: email
//	    name: Email
//	    type: email
//
// A provider without a type is accepted on purpose: the sign-in service
// answers it with a configuration error at request time.
package providers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tawashy/next-auth/pkg/config"
	"github.com/tawashy/next-auth/pkg/oauth"
	"github.com/tawashy/next-auth/pkg/signin"
)

var (
	ErrMissingID   = errors.New("providers: provider id is required")
	ErrDuplicateID = errors.New("providers: duplicate provider id")
	ErrNoOAuth     = errors.New("providers: oauth provider has no oauth section")
)

// File is the YAML document.
type File struct {
	Providers []Entry `yaml:"providers"`
}

// Entry is one configured provider.
type Entry struct {
	ID    string                `yaml:"id"`
	Name  string                `yaml:"name"`
	Type  string                `yaml:"type"`
	OAuth *oauth.ProviderConfig `yaml:"oauth,omitempty"`
}

// Registry resolves provider ids. It implements signin.ProviderResolver.
type Registry struct {
	order   []string
	entries map[string]Entry
}

var _ signin.ProviderResolver = (*Registry)(nil)

// Load reads and validates the catalogue at path.
func Load(path string) (*Registry, error) {
	var f File
	if err := config.LoadYAML(path, &f); err != nil {
		return nil, err
	}
	return New(f.Providers...)
}

// New validates entries and builds a Registry.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, ErrMissingID
		}
		if _, dup := r.entries[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if signin.ProviderType(e.Type) == signin.TypeOAuth && e.OAuth == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoOAuth, e.ID)
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		r.entries[e.ID] = e
		r.order = append(r.order, e.ID)
	}
	return r, nil
}

// Provider returns the provider registered under id.
func (r *Registry) Provider(id string) (signin.Provider, bool) {
	e, ok := r.entries[id]
	if !ok {
		return signin.Provider{}, false
	}
	return signin.Provider{ID: e.ID, Name: e.Name, Type: signin.ProviderType(e.Type)}, true
}

// All returns every provider in file order.
func (r *Registry) All() []signin.Provider {
	out := make([]signin.Provider, 0, len(r.order))
	for _, id := range r.order {
		p, _ := r.Provider(id)
		out = append(out, p)
	}
	return out
}

// HasType reports whether any provider has type t.
func (r *Registry) HasType(t signin.ProviderType) bool {
	return slices.ContainsFunc(r.All(), func(p signin.Provider) bool { return p.Type == t })
}

// OAuthConfigs returns the client registrations of the OAuth providers,
// keyed by provider id.
func (r *Registry) OAuthConfigs() []oauth.ProviderConfig {
	var out []oauth.ProviderConfig
	for _, id := range r.order {
		e := r.entries[id]
		if signin.ProviderType(e.Type) != signin.TypeOAuth {
			continue
		}
		pc := *e.OAuth
		pc.ID = e.ID
		out = append(out, pc)
	}
	return out
}
