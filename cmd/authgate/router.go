package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tawashy/next-auth/pkg/httpserver"
	"github.com/tawashy/next-auth/pkg/requestid"
	"github.com/tawashy/next-auth/pkg/signin"
)

func newRouter(svc *signin.Service, resolver signin.ProviderResolver, cfg signin.Config, log *slog.Logger, checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthHandler(log, checks...))

	signIn := signin.NewHandler(svc, resolver,
		signin.WithProviderParam(func(r *http.Request) string { return chi.URLParam(r, "provider") }),
	)
	r.Route(cfg.BasePath, func(r chi.Router) {
		r.Get("/signin/{provider}", signIn)
		r.Post("/signin/{provider}", signIn)
	})

	return r
}
