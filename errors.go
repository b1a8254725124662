package viewkit

import (
	"errors"
	"fmt"
	"net/http"
)

// Dispatch and configuration errors.
var (
	// ErrMethodNotAllowed is reported by the method guard when the incoming
	// HTTP method is not in the view's allow-list.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrNoHandler is reported when method resolution finds no handler for
	// the incoming verb. This is a configuration error, not a client error.
	ErrNoHandler = errors.New("no handler configured for method")

	// ErrNoTemplate is reported when a handler defers to rendering but the
	// view has no template configured.
	ErrNoTemplate = errors.New("no template configured")

	// ErrNoTemplateSource is reported when a view must render but has no
	// TemplateSource to render with.
	ErrNoTemplateSource = errors.New("no template source configured")

	// ErrNilResponse is reported when a decorator swallows the response and
	// returns nil instead of deferring to the endpoint.
	ErrNilResponse = errors.New("dispatch returned nil response")

	// ErrNilContext is reported when Dispatch is invoked without a request
	// context.
	ErrNilContext = errors.New("nil context")
)

// ViewError wraps a dispatch or rendering error with the identity of the
// view it occurred in.
type ViewError struct {
	View string
	Err  error
}

// Error implements the error interface.
func (e *ViewError) Error() string {
	return fmt.Sprintf("view %s: %v", e.View, e.Err)
}

// Unwrap supports errors.Is and errors.As against the underlying error.
func (e *ViewError) Unwrap() error {
	return e.Err
}

// defaultErrorHandler maps dispatch errors to plain HTTP error responses.
func defaultErrorHandler(ctx *Context, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	// Configuration errors (ErrNoHandler, ErrNoTemplate) and rendering
	// failures are all server faults.
	if errors.Is(err, ErrMethodNotAllowed) {
		http.Error(w, "405 Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
}
