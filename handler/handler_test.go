package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawashy/next-auth/handler"
)

type greetReq struct {
	Name string
}

func bindName(r *http.Request, v any) error {
	req := v.(*greetReq)
	req.Name = r.URL.Query().Get("name")
	if req.Name == "" {
		return handler.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, greetReq](func(ctx handler.Context, req greetReq) handler.Response {
		return handler.RedirectWithCode("/hello/"+req.Name, http.StatusFound)
	})
	wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, greetReq](bindName))

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?name=ann", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/hello/ann", rec.Header().Get("Location"))
	})

	t.Run("binder error keeps its status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name is required", strings.TrimSpace(rec.Body.String()))
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response { return nil })
	wrapped := handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) {
		got = err
	}))

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNilResponse)
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}
	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		order = append(order, "handler")
		return handler.Redirect("/")
	})

	wrapped := handler.Wrap(h, handler.WithDecorators(mark("outer"), mark("inner")))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "http error", err: handler.NewHTTPError(http.StatusInternalServerError, "Error: Type not specified for X"), wantCode: 500, wantBody: "Error: Type not specified for X"},
		{name: "wrapped http error", err: errors.Join(errors.New("ctx"), handler.ErrNotFound), wantCode: 404, wantBody: "not_found"},
		{name: "plain error", err: errors.New("boom"), wantCode: 500, wantBody: "boom"},
		{name: "nil error", err: nil, wantCode: 500, wantBody: "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
				return handler.Error(tt.err)
			})
			rec := httptest.NewRecorder()
			handler.Wrap(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("regular request", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		err := handler.Redirect("/next").Render(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/next", rec.Header().Get("Location"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("location is written verbatim", func(t *testing.T) {
		t.Parallel()

		for _, target := range []string{"custom/continue", "/a/../b/./c", "../up", "https://other.example/x?y=1#z"} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signin/email", nil)
			require.NoError(t, handler.RedirectWithCode(target, http.StatusFound).Render(rec, req))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, target, rec.Header().Get("Location"))
		}
	})

	t.Run("datastar request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()

		err := handler.RedirectWithCode("/next", http.StatusFound).Render(rec, req)
		require.NoError(t, err)

		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "window.location.href")
		assert.Contains(t, rec.Body.String(), "/next")
		assert.Empty(t, rec.Header().Get("Location"))
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    bool
	}{
		{name: "accept header", target: "/", headers: map[string]string{"Accept": "text/event-stream"}, want: true},
		{name: "query param", target: "/?datastar=%7B%7D", want: true},
		{name: "content type", target: "/", headers: map[string]string{"Content-Type": "application/x-datastar"}, want: true},
		{name: "plain browser", target: "/", headers: map[string]string{"Accept": "text/html"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}
