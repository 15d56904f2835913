package oauth

import "time"

// Config holds settings shared by every OAuth provider.
type Config struct {
	StateTTL    time.Duration `env:"OAUTH_STATE_TTL" envDefault:"10m"`
	PKCE        bool          `env:"OAUTH_PKCE" envDefault:"true"`
	StatePrefix string        `env:"OAUTH_STATE_PREFIX" envDefault:"oauth:state:"`
}

// ProviderConfig describes one OAuth client registration. Endpoint names a
// well-known provider ("github", "google"); otherwise AuthURL and TokenURL
// must be set.
type ProviderConfig struct {
	ID           string   `yaml:"id"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Endpoint     string   `yaml:"endpoint"`
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}
