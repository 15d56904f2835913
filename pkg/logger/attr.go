package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a classification tag under the key "event".
// Sign-in failures are always logged with a fixed tag so that alerts can
// match on it regardless of the message text.
func Event(tag string) slog.Attr {
	return slog.String("event", tag)
}

// Provider records the provider identifier under the key "provider".
func Provider(id string) slog.Attr {
	return slog.String("provider", id)
}

// ProviderType records the provider kind (oauth, email, ...) under the key "provider_type".
func ProviderType(kind string) slog.Attr {
	return slog.String("provider_type", kind)
}

// Method records the HTTP method under the key "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Host records the request host under the key "host".
func Host(h string) slog.Attr {
	return slog.String("host", h)
}
