// Package handler provides typed HTTP handlers on top of net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response; Wrap turns it into an http.HandlerFunc:
//
//	type signInForm struct{ Email string }
//
//	h := handler.HandlerFunc[handler.Context, signInForm](
//		func(ctx handler.Context, f signInForm) handler.Response {
//			return handler.RedirectWithCode("/verify-request", http.StatusFound)
//		},
//	)
//	mux.Handle("POST /signin", handler.Wrap(h, handler.WithBinders[handler.Context, signInForm](bindForm)))
//
// # Binding
//
// Binders run in order and fill the request value. A binder returning an
// HTTPError (ErrBadRequest, for instance) keeps its status code; any other
// error becomes a 500.
//
// # Responses
//
// Redirect and RedirectWithCode write the Location header exactly as given,
// with Cache-Control: no-store. DataStar requests, recognised by IsDataStar,
// receive the redirect as a Server-Sent Event instead, since a fetch-based
// frontend cannot follow a 3xx itself.
//
// Error routes an error to the ErrorHandler. DefaultErrorHandler writes the
// HTTPError message as plain text with its status, or the error text with
// 500 otherwise. A handler that returns a nil Response fails with
// ErrNilResponse.
//
// # Decorators
//
// Decorators wrap a HandlerFunc; the first one listed is the outermost.
package handler
