// Package requestid tags each HTTP request with a correlation id so that the
// log records of one sign-in attempt can be found together.
//
// # Overview
//
//   - Middleware reads the X-Request-ID header. A well-formed value is
//     reused, anything else is replaced by a new UUID. The id is stored in
//     the request context and echoed in the response header.
//   - WithContext and FromContext store and read the id.
//   - LoggerExtractor plugs into logger.WithContextExtractors, adding a
//     request_id attribute to every record written with a request context.
//
// Client-supplied ids are accepted when they are at most 128 characters of
// letters, digits, '-' and '_'.
//
// # Usage
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
//		log.InfoContext(r.Context(), "ping") // carries request_id
//	})
//
// Outside HTTP, for example in a test, put an id on the context directly:
//
//	ctx := requestid.WithContext(context.Background(), "test-1")
//
// # Error Handling
//
// The package returns no errors. FromContext returns "" when no id is set.
package requestid
