package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/viewkit/viewkit"
)

// requestIDContextKey is used as a key for storing the request ID in the
// request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID decorator.
type RequestIDConfig struct {
	// Skip defines a function to skip the decorator for specific requests
	Skip func(ctx *viewkit.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID decorator with default configuration.
// It generates a new UUID for each request and includes it in both the
// context and the response headers.
func RequestID() viewkit.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID decorator with custom
// configuration. The ID is stored in the context and added to response
// headers for tracing and logging.
func RequestIDWithConfig(cfg RequestIDConfig) viewkit.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next viewkit.HandlerFunc) viewkit.HandlerFunc {
		return func(ctx *viewkit.Context) viewkit.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var requestID string

			if cfg.UseExisting {
				if existingID := ctx.Request().Header.Get(cfg.HeaderName); existingID != "" {
					requestID = existingID
				}
			}

			if requestID == "" {
				requestID = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, requestID)

			response := next(ctx)
			if response == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, requestID)
				return response(w, r)
			}
		}
	}
}

// GetRequestID retrieves the request ID from the context. Returns the ID
// and a boolean indicating whether it was found.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
