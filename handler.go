package viewkit

import (
	"io"
	"net/http"
)

// Response is a deferred response writer. It sets headers, status code, and
// body when invoked. Errors returned from a Response are routed to the view's
// error handler rather than written to the client directly.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a single HTTP verb for a view. Returning nil defers to
// the view's template rendering with the context bag as template data.
type HandlerFunc func(ctx *Context) Response

// Middleware wraps handlers to add cross-cutting functionality. Decorators
// configured on a View are Middleware applied in declared order, outermost
// first.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors during request processing and rendering.
type ErrorHandler func(ctx *Context, err error)

// TemplateSource selects and renders templates for a view. Given an ordered
// list of candidate template names, implementations render the first name
// that exists into w using data as template data.
type TemplateSource interface {
	Render(w io.Writer, names []string, data any) error
}
