package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"golang.org/x/oauth2"

	"github.com/tawashy/next-auth/pkg/logger"
	"github.com/tawashy/next-auth/pkg/signin"
)

// Parameters the builder sets itself; callers cannot override them.
var reservedParams = map[string]struct{}{
	"client_id":             {},
	"redirect_uri":          {},
	"response_type":         {},
	"scope":                 {},
	"state":                 {},
	"code_challenge":        {},
	"code_challenge_method": {},
}

// Builder creates authorization URLs for the configured OAuth providers and
// remembers the state of each handshake until its callback.
type Builder struct {
	cfg       Config
	providers map[string]provider
	store     StateStore
	logger    *slog.Logger
	now       func() time.Time
}

type provider struct {
	ProviderConfig
	endpoint oauth2.Endpoint
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the builder's logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder validates providers and returns a Builder. A nil store falls
// back to an in-memory store.
func NewBuilder(cfg Config, store StateStore, providers []ProviderConfig, opts ...Option) (*Builder, error) {
	if store == nil {
		store = NewMemoryStateStore()
	}
	if cfg.StateTTL <= 0 {
		cfg.StateTTL = 10 * time.Minute
	}

	b := &Builder{
		cfg:       cfg,
		providers: make(map[string]provider, len(providers)),
		store:     store,
		logger:    logger.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, pc := range providers {
		if pc.ClientID == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingClientID, pc.ID)
		}
		if _, dup := b.providers[pc.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProvider, pc.ID)
		}
		ep, err := endpointFor(pc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, pc.ID)
		}
		b.providers[pc.ID] = provider{ProviderConfig: pc, endpoint: ep}
	}

	return b, nil
}

// AuthorizationURL starts the handshake for opts.Provider. It persists a
// fresh state, plus a PKCE verifier when enabled, and returns the provider's
// authorization URL. Query parameters of the sign-in request are forwarded
// except those the handshake owns.
func (b *Builder) AuthorizationURL(ctx context.Context, req signin.Request, opts signin.Options) (string, error) {
	p, ok := b.providers[opts.Provider.ID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, opts.Provider.ID)
	}
	conf := b.oauth2Config(p, opts.BaseURL)

	state, err := generateState()
	if err != nil {
		return "", errors.Join(ErrGenerateState, err)
	}

	st := State{
		Provider:    p.ID,
		RedirectURL: conf.RedirectURL,
		CreatedAt:   b.now(),
	}
	var authOpts []oauth2.AuthCodeOption
	if b.cfg.PKCE {
		st.Verifier = oauth2.GenerateVerifier()
		authOpts = append(authOpts, oauth2.S256ChallengeOption(st.Verifier))
	}
	authOpts = append(authOpts, forwardedParams(req.AuthorizationParams)...)

	if err := b.store.Save(ctx, state, st, b.cfg.StateTTL); err != nil {
		return "", errors.Join(ErrStoreState, err)
	}

	b.logger.DebugContext(ctx, "authorization url issued",
		logger.Provider(p.ID),
		slog.Bool("pkce", b.cfg.PKCE),
	)
	return conf.AuthCodeURL(state, authOpts...), nil
}

// ConsumeState returns and forgets the state issued for a handshake.
// A second call for the same state returns ErrStateNotFound.
func (b *Builder) ConsumeState(ctx context.Context, state string) (State, error) {
	return b.store.Consume(ctx, state)
}

// Exchange finishes a handshake: it consumes state and trades code for a
// token at the provider, sending the stored PKCE verifier.
func (b *Builder) Exchange(ctx context.Context, state, code string) (State, *oauth2.Token, error) {
	st, err := b.ConsumeState(ctx, state)
	if err != nil {
		return State{}, nil, err
	}
	p, ok := b.providers[st.Provider]
	if !ok {
		return State{}, nil, fmt.Errorf("%w: %s", ErrUnknownProvider, st.Provider)
	}

	conf := b.oauth2Config(p, "")
	conf.RedirectURL = st.RedirectURL

	var opts []oauth2.AuthCodeOption
	if st.Verifier != "" {
		opts = append(opts, oauth2.VerifierOption(st.Verifier))
	}
	tok, err := conf.Exchange(ctx, code, opts...)
	if err != nil {
		return State{}, nil, err
	}
	return st, tok, nil
}

func (b *Builder) oauth2Config(p provider, baseURL string) *oauth2.Config {
	redirect := p.RedirectURL
	if redirect == "" {
		redirect = baseURL + "/callback/" + url.PathEscape(p.ID)
	}
	return &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		Endpoint:     p.endpoint,
		RedirectURL:  redirect,
		Scopes:       p.Scopes,
	}
}

func forwardedParams(params map[string]string) []oauth2.AuthCodeOption {
	keys := make([]string, 0, len(params))
	for k := range params {
		if _, reserved := reservedParams[k]; !reserved {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	opts := make([]oauth2.AuthCodeOption, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, oauth2.SetAuthURLParam(k, params[k]))
	}
	return opts
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
