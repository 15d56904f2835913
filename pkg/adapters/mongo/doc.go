// Package mongo is the MongoDB storage adapter for email sign-in.
//
// Users implements signin.Adapter over a users collection. Documents are
// matched on their email field, which must be stored lower-cased, the same
// form the sign-in service looks it up in:
//
//	{
//		"_id": ObjectId("..."),
//		"email": "jane@example.com",
//		"name": "Jane",
//		"image": "https://...",
//		"emailVerified": ISODate("...")
//	}
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	users := mongo.NewUsers(client.Database(cfg.Database).Collection(cfg.Collection))
//	svc := signin.NewService(signinCfg, signin.WithAdapter(users))
//
// NewUsers accepts any Finder, so tests substitute a fake returning
// mongo.NewSingleResultFromDocument.
//
// Connect pings the primary before returning and retries RetryAttempts times
// RetryInterval apart. Healthcheck turns the client into a readiness probe.
//
// # Configuration
//
//	MONGODB_URL                 required
//	MONGODB_DATABASE            auth
//	MONGODB_USERS_COLLECTION    users
//	MONGODB_CONNECT_TIMEOUT     10s
//	MONGODB_MAX_POOL_SIZE       100
//	MONGODB_MIN_POOL_SIZE       1
//	MONGODB_MAX_CONN_IDLE_TIME  300s
//	MONGODB_RETRY_ATTEMPTS      3
//	MONGODB_RETRY_INTERVAL      5s
//
// # Errors
//
// GetUserByEmail returns nil, nil when no document matches and wraps any
// other driver failure in ErrUserLookupFailed. Connect returns
// ErrEmptyConnectionURL or ErrFailedToConnectToMongo; probes wrap
// ErrHealthcheckFailed.
package mongo
