// Package redis connects to the Redis server that backs OAuth state storage
// for the auth gateway.
//
// The package wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which parses a redis:// URL and pings the server, retrying
//     with a fixed interval until it answers or the attempts run out.
//   - Healthcheck, which adapts a client to the probe signature used by the
//     /healthz endpoint (see httpserver.Check).
//
// Configuration is described by the Config struct, populated from the
// environment through config.Load:
//
//	REDIS_URL              redis://localhost:6379/0
//	REDIS_RETRY_ATTEMPTS   3
//	REDIS_RETRY_INTERVAL   5s
//	REDIS_CONNECT_TIMEOUT  30s
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// The client satisfies oauth.RedisClient, so it plugs straight into the
// state store used by the OAuth builder:
//
//	store := oauth.NewRedisStateStore(client, "oauth:state:")
//
// Register the readiness probe next to the other backends:
//
//	checks = append(checks, httpserver.Check{
//		Name:  "redis",
//		Probe: redis.Healthcheck(client),
//	})
//
// # Errors
//
// Connect returns ErrEmptyConnectionURL for a blank URL,
// ErrFailedToParseRedisConnString when the URL does not parse and
// ErrRedisNotReady when every attempt failed; the last go-redis error is
// joined to the sentinel with errors.Join. The probe returned by Healthcheck
// wraps ErrHealthcheckFailed the same way.
package redis
