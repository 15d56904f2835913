package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader marks requests that expect Server-Sent Events.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam is the query parameter DataStar uses for signals.
	DataStarQueryParam = "datastar"
)

// IsDataStar reports whether r was issued by a DataStar frontend, which
// cannot follow a 3xx and needs the redirect pushed over SSE instead.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
