// Package oauth builds OAuth 2.0 authorization URLs for the sign-in service.
//
// Builder implements signin.AuthorizationURLBuilder on top of
// golang.org/x/oauth2. For every sign-in it generates a random state and,
// unless disabled, a PKCE verifier, stores both in a StateStore and returns
// the provider's authorization URL. The redirect URI defaults to
// <base>/callback/<provider id>.
//
//	store := oauth.NewRedisStateStore(redisClient, cfg.StatePrefix)
//	builder, err := oauth.NewBuilder(cfg, store, catalogue.OAuthConfigs())
//	svc := signin.NewService(signinCfg, signin.WithAuthorizationURLBuilder(builder))
//
// The callback endpoint calls Exchange, which consumes the state exactly once
// and sends the stored verifier with the code.
//
// MemoryStateStore is for single-instance deployments and tests;
// RedisStateStore uses SET with a TTL and GETDEL.
package oauth
