// Package pg is the PostgreSQL storage adapter for email sign-in.
//
// Connect opens a pgx pool with retries, Migrate applies the embedded users
// schema with goose, and Users implements signin.Adapter:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if cfg.AutoMigrate {
//		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//			return err
//		}
//	}
//	svc := signin.NewService(signinCfg, signin.WithAdapter(pg.NewUsers(pool)))
//
// # Schema
//
// The migrations live in migrations/ and are embedded into the binary. They
// create a users table with a text id and a unique email column; emails
// are expected to be stored lower-cased.
// goose records applied versions in Config.MigrationsTable
// (auth_schema_migrations by default) so the gateway can share a database
// with an application that runs its own goose migrations.
//
// # Lookup
//
// Users depends on the Querier interface rather than the pool, so tests pass
// a fake row scanner. A pgx.ErrNoRows result becomes nil, nil, meaning "no
// such user"; the sign-in service then falls back to a placeholder profile.
//
// # Configuration
//
//	PG_CONN_URL            required
//	PG_MAX_OPEN_CONNS      10
//	PG_MAX_IDLE_CONNS      2
//	PG_HEALTHCHECK_PERIOD  1m
//	PG_MAX_CONN_IDLE_TIME  10m
//	PG_MAX_CONN_LIFETIME   30m
//	PG_RETRY_ATTEMPTS      3
//	PG_RETRY_INTERVAL      5s
//	PG_MIGRATIONS_TABLE    auth_schema_migrations
//	PG_AUTO_MIGRATE        true
//
// # Errors
//
// Connection failures wrap ErrEmptyConnectionString,
// ErrFailedToParseDBConfig or ErrFailedToOpenDBConnection. Migrate wraps
// ErrFailedToApplyMigrations, lookups wrap ErrUserLookupFailed, and
// IsNotFoundError reports pgx.ErrNoRows.
package pg
