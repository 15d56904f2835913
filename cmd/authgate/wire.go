package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tawashy/next-auth/pkg/adapters/memory"
	"github.com/tawashy/next-auth/pkg/adapters/mongo"
	"github.com/tawashy/next-auth/pkg/adapters/pg"
	"github.com/tawashy/next-auth/pkg/config"
	"github.com/tawashy/next-auth/pkg/email"
	"github.com/tawashy/next-auth/pkg/httpserver"
	"github.com/tawashy/next-auth/pkg/oauth"
	"github.com/tawashy/next-auth/pkg/providers"
	"github.com/tawashy/next-auth/pkg/redis"
	"github.com/tawashy/next-auth/pkg/signin"
)

// deps holds the collaborators selected by appConfig.
type deps struct {
	builder *oauth.Builder
	adapter signin.Adapter
	sender  *email.SignInSender
	domains []string
	checks  []httpserver.Check
	closers []func(context.Context) error
}

func (d *deps) serviceOptions(log *slog.Logger) []signin.Option {
	opts := []signin.Option{signin.WithLogger(log)}
	if d.builder != nil {
		opts = append(opts, signin.WithAuthorizationURLBuilder(d.builder))
	}
	if d.adapter != nil {
		opts = append(opts, signin.WithAdapter(d.adapter))
	}
	if d.sender != nil {
		opts = append(opts, signin.WithEmailSender(d.sender))
	}
	if len(d.domains) > 0 {
		opts = append(opts, signin.WithCallback(signin.AllowEmailDomains(d.domains...)))
	}
	return opts
}

func (d *deps) close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i](ctx)
	}
}

func wire(ctx context.Context, app appConfig, registry *providers.Registry, log *slog.Logger) (*deps, error) {
	d := &deps{domains: app.AllowedDomains}

	if registry.HasType(signin.TypeOAuth) {
		if err := wireOAuth(ctx, d, app, registry, log); err != nil {
			d.close(ctx)
			return nil, err
		}
	}
	if registry.HasType(signin.TypeEmail) {
		if err := wireStorage(ctx, d, app, log); err != nil {
			d.close(ctx)
			return nil, err
		}
		if err := wireMailer(d, app, log); err != nil {
			d.close(ctx)
			return nil, err
		}
	}
	return d, nil
}

func wireOAuth(ctx context.Context, d *deps, app appConfig, registry *providers.Registry, log *slog.Logger) error {
	var cfg oauth.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	var store oauth.StateStore
	switch app.StateStore {
	case "memory":
		store = oauth.NewMemoryStateStore()
	case "redis":
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, func(context.Context) error { return client.Close() })
		d.checks = append(d.checks, httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)})
		store = oauth.NewRedisStateStore(client, cfg.StatePrefix)
	default:
		return fmt.Errorf("unknown AUTH_STATE_STORE %q", app.StateStore)
	}

	builder, err := oauth.NewBuilder(cfg, store, registry.OAuthConfigs(), oauth.WithLogger(log))
	if err != nil {
		return err
	}
	d.builder = builder
	return nil
}

func wireStorage(ctx context.Context, d *deps, app appConfig, log *slog.Logger) error {
	switch app.Storage {
	case "none":
	case "memory":
		d.adapter = memory.NewUsers()
	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, func(context.Context) error { pool.Close(); return nil })
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
				return err
			}
		}
		d.checks = append(d.checks, httpserver.Check{Name: "postgres", Probe: pg.Healthcheck(pool)})
		d.adapter = pg.NewUsers(pool)
	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, client.Disconnect)
		d.checks = append(d.checks, httpserver.Check{Name: "mongo", Probe: mongo.Healthcheck(client)})
		d.adapter = mongo.NewUsers(client.Database(cfg.Database).Collection(cfg.Collection))
	default:
		return fmt.Errorf("unknown AUTH_STORAGE %q", app.Storage)
	}
	return nil
}

func wireMailer(d *deps, app appConfig, log *slog.Logger) error {
	var cfg email.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	var mailer email.Mailer
	switch app.Mailer {
	case "dev":
		mailer = email.NewDevMailer(cfg.DevDir)
	case "postmark":
		pm, err := email.NewPostmarkMailer(cfg)
		if err != nil {
			return err
		}
		mailer = pm
	default:
		return fmt.Errorf("unknown AUTH_MAILER %q", app.Mailer)
	}

	var signInCfg email.SignInConfig
	if err := config.Load(&signInCfg); err != nil {
		return err
	}
	sender, err := email.NewSignInSender(mailer, signInCfg, email.WithLogger(log))
	if err != nil {
		return err
	}
	d.sender = sender
	return nil
}
