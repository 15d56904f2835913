// Command authgate serves the "begin sign-in" endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tawashy/next-auth/pkg/config"
	"github.com/tawashy/next-auth/pkg/httpserver"
	"github.com/tawashy/next-auth/pkg/logger"
	"github.com/tawashy/next-auth/pkg/providers"
	"github.com/tawashy/next-auth/pkg/requestid"
	"github.com/tawashy/next-auth/pkg/signin"
)

type appConfig struct {
	Env            string   `env:"APP_ENV" envDefault:"development"`
	ProvidersFile  string   `env:"AUTH_PROVIDERS_FILE" envDefault:"providers.yaml"`
	Storage        string   `env:"AUTH_STORAGE" envDefault:"memory"`
	StateStore     string   `env:"AUTH_STATE_STORE" envDefault:"memory"`
	Mailer         string   `env:"AUTH_MAILER" envDefault:"dev"`
	AllowedDomains []string `env:"AUTH_ALLOWED_EMAIL_DOMAINS" envSeparator:","`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	var signinCfg signin.Config
	if err := config.Load(&signinCfg); err != nil {
		return err
	}
	var serverCfg httpserver.Config
	if err := config.Load(&serverCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, "authgate"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	registry, err := providers.Load(app.ProvidersFile)
	if err != nil {
		return fmt.Errorf("load providers: %w", err)
	}

	deps, err := wire(ctx, app, registry, log)
	if err != nil {
		return err
	}
	defer deps.close(context.WithoutCancel(ctx))

	svc := signin.NewService(signinCfg, deps.serviceOptions(log)...)
	router := newRouter(svc, registry, signinCfg, log, deps.checks...)

	return httpserver.New(serverCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
