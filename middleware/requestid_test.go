package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewkit/viewkit"
	"github.com/viewkit/viewkit/middleware"
)

func serveView(t *testing.T, v *viewkit.View, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	v.ServeHTTP(w, req)
	return w
}

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	var capturedID string
	v := &viewkit.View{
		Decorators: []viewkit.Middleware{middleware.RequestID()},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				id, ok := middleware.GetRequestID(ctx)
				assert.True(t, ok, "request ID should be present in context")
				capturedID = id
				return viewkit.NoContent()
			},
		},
	}

	w := serveView(t, v, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotEmpty(t, capturedID)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))

	// Default generator produces UUID v4.
	assert.Len(t, capturedID, 36)
	assert.Contains(t, capturedID, "-")
}

func TestRequestIDCustomGenerator(t *testing.T) {
	t.Parallel()

	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.RequestIDWithConfig(middleware.RequestIDConfig{
				Generator: func() string { return "custom-123" },
			}),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				return viewkit.NoContent()
			},
		},
	}

	w := serveView(t, v, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "custom-123", w.Header().Get("X-Request-ID"))
}

func TestRequestIDCustomHeaderName(t *testing.T) {
	t.Parallel()

	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.RequestIDWithConfig(middleware.RequestIDConfig{
				HeaderName: "X-Trace-ID",
			}),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				return viewkit.NoContent()
			},
		},
	}

	w := serveView(t, v, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.RequestIDWithConfig(middleware.RequestIDConfig{
				UseExisting: true,
			}),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				return viewkit.NoContent()
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "incoming-id")

	w := serveView(t, v, req)

	assert.Equal(t, "incoming-id", w.Header().Get("X-Request-ID"))
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	v := &viewkit.View{
		Decorators: []viewkit.Middleware{
			middleware.RequestIDWithConfig(middleware.RequestIDConfig{
				Skip: func(ctx *viewkit.Context) bool { return true },
			}),
		},
		Handlers: map[string]viewkit.HandlerFunc{
			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
				_, ok := middleware.GetRequestID(ctx)
				assert.False(t, ok, "skipped decorator must not set an ID")
				return viewkit.NoContent()
			},
		},
	}

	w := serveView(t, v, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, w.Header().Get("X-Request-ID"))
}
