// Package logger builds *slog.Logger instances for the auth gateway and
// provides attribute helpers so that field names stay consistent.
//
// New assembles a text or JSON handler, applies static attributes and wraps
// it with a context handler that runs ContextExtractor callbacks on every
// record (the request id, for instance):
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "authgate"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "oauth sign-in failed",
//		logger.Event("SIGNIN_OAUTH_ERROR"),
//		logger.Provider("github"),
//		logger.Error(err),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
