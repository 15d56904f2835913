package signin

import (
	"context"
	"log/slog"

	"github.com/tawashy/next-auth/pkg/logger"
)

// Adapter looks up stored users.
type Adapter interface {
	// GetUserByEmail returns the user with the given normalized email,
	// or nil and no error when there is none.
	GetUserByEmail(ctx context.Context, email string) (*Profile, error)
}

// AdapterFactory yields the adapter for a request.
type AdapterFactory interface {
	Adapter(ctx context.Context, opts Options) (Adapter, error)
}

// AdapterFactoryFunc adapts a function to AdapterFactory.
type AdapterFactoryFunc func(ctx context.Context, opts Options) (Adapter, error)

func (f AdapterFactoryFunc) Adapter(ctx context.Context, opts Options) (Adapter, error) {
	return f(ctx, opts)
}

// StaticAdapter returns a factory that always yields a.
func StaticAdapter(a Adapter) AdapterFactory {
	return AdapterFactoryFunc(func(context.Context, Options) (Adapter, error) {
		return a, nil
	})
}

// loggedAdapter logs adapter failures and wraps them in *AdapterError.
type loggedAdapter struct {
	next Adapter
	log  *slog.Logger
}

func wrapAdapter(a Adapter, log *slog.Logger) Adapter {
	return &loggedAdapter{next: a, log: log}
}

func (a *loggedAdapter) GetUserByEmail(ctx context.Context, email string) (*Profile, error) {
	p, err := a.next.GetUserByEmail(ctx, email)
	if err != nil {
		a.log.ErrorContext(ctx, "adapter call failed",
			logger.Event(TagAdapterError),
			slog.String("method", "GetUserByEmail"),
			logger.Error(err),
		)
		return nil, &AdapterError{Method: "GetUserByEmail", Err: err}
	}
	return p, nil
}
