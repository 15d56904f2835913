package handler

import "net/http"

type redirectResponse struct {
	url  string
	code int
}

// Render issues the redirect, over SSE for DataStar requests.
// The Location header carries the URL exactly as given; relative targets
// are left for the client to resolve.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(r.url)
	}
	h := w.Header()
	h.Set("Cache-Control", "no-store")
	h.Set("Location", r.url)
	w.WriteHeader(r.code)
	return nil
}

// Redirect creates a 303 See Other redirect.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect with a specific 3xx status.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
