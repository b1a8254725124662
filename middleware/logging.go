package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/viewkit/viewkit"
	"github.com/viewkit/viewkit/logger"
)

// LoggingConfig configures the request/response logging decorator.
type LoggingConfig struct {
	// Skip defines a function to skip the decorator for specific requests
	Skip func(ctx *viewkit.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// LogHeaders enables logging of request/response headers (default: false for security)
	LogHeaders bool

	// SensitiveHeaders is a list of header names to redact (default: common auth headers)
	SensitiveHeaders []string

	// Component name for structured logging (default: "view")
	Component string
}

// Logging creates a request/response logging decorator with default
// configuration. It logs request start and completion at info level.
func Logging() viewkit.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging decorator with a custom logger.
func LoggingWithLogger(log *slog.Logger) viewkit.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging decorator with
// custom configuration. Response status and size are captured by wrapping
// the response writer during rendering.
func LoggingWithConfig(cfg LoggingConfig) viewkit.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}

	if cfg.Component == "" {
		cfg.Component = "view"
	}

	return func(next viewkit.HandlerFunc) viewkit.HandlerFunc {
		return func(ctx *viewkit.Context) viewkit.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			requestID, _ := GetRequestID(ctx)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("request"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.RemoteAddr(req.RemoteAddr),
				logger.RequestID(requestID),
				logger.Query(req.URL.RawQuery),
			}
			if cfg.LogHeaders {
				if headers := redactHeaders(req.Header, cfg.SensitiveHeaders); len(headers) > 0 {
					attrs = append(attrs, slog.Any("request_headers", headers))
				}
			}
			cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "request started", attrs...)

			response := next(ctx)
			if response == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				err := response(wrapped, r)

				duration := time.Since(start)
				respAttrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Event("response"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.StatusCode(wrapped.status),
					logger.BytesOut(int64(wrapped.size)),
					logger.Duration(duration),
					logger.RequestID(requestID),
				}
				if cfg.LogHeaders {
					if headers := redactHeaders(w.Header(), cfg.SensitiveHeaders); len(headers) > 0 {
						respAttrs = append(respAttrs, slog.Any("response_headers", headers))
					}
				}

				level := cfg.LogLevel
				switch {
				case err != nil || wrapped.status >= 500:
					level = slog.LevelError
					respAttrs = append(respAttrs, logger.Error(err))
				case wrapped.status >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					respAttrs = append(respAttrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request completed", respAttrs...)
				return err
			}
		}
	}
}

// redactHeaders flattens a header map for logging, replacing values of
// sensitive headers with a redaction marker.
func redactHeaders(header http.Header, sensitive []string) map[string]any {
	headers := make(map[string]any, len(header))
	for key, values := range header {
		if slices.Contains(sensitive, key) {
			headers[key] = "[REDACTED]"
			continue
		}
		if len(values) == 1 {
			headers[key] = values[0]
		} else {
			headers[key] = values
		}
	}
	return headers
}

// statusWriter wraps http.ResponseWriter to capture response status and size.
type statusWriter struct {
	http.ResponseWriter
	status        int
	size          int
	headerWritten bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.headerWritten {
		w.status = status
		w.headerWritten = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
