// Package httpserver runs the gateway's HTTP server with graceful shutdown
// and exposes a readiness handler over named dependency probes.
//
// # Server
//
// New builds a Server from Config; Run listens on Config.Addr and serves
// until the context passed to it is canceled, then calls
// http.Server.Shutdown bounded by Config.ShutdownTimeout. Request contexts
// are derived from the run context without its cancellation, so in-flight
// sign-ins are allowed to finish during shutdown.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Serve does the same on a listener the caller already owns, which is how
// the tests bind to a random port.
//
// Environment variables read into Config:
//
//	HTTP_ADDR                  :8080
//	HTTP_READ_HEADER_TIMEOUT   5s
//	HTTP_READ_TIMEOUT          15s
//	HTTP_WRITE_TIMEOUT         15s
//	HTTP_IDLE_TIMEOUT          60s
//	HTTP_SHUTDOWN_TIMEOUT      10s
//
// # Health
//
// HealthHandler runs every Check in order and answers:
//
//	200 ALIVE       no checks registered
//	200 READY       every probe returned nil
//	503 NOT_READY   the first failing probe, logged with its name
//
//	r.Get("/healthz", httpserver.HealthHandler(log,
//		httpserver.Check{Name: "postgres", Probe: pg.Healthcheck(pool)},
//		httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)},
//	))
//
// # Errors
//
// Run and Serve return ErrStart when the listener cannot be opened or the
// server fails while running, and ErrShutdown when graceful shutdown does
// not complete in time. Both are joined with the underlying error.
package httpserver
