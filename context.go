package viewkit

import (
	"net/http"
	"time"
)

// Request headers used to detect asynchronous client-side calls.
const (
	HeaderXRequestedWith = "X-Requested-With"
	HeaderHXRequest      = "HX-Request"
)

// Context is the per-request state of a dispatched view. Exactly one Context
// exists per request; it carries the request, any routing arguments supplied
// by the hosting framework, and the context bag used as template data.
//
// Context implements context.Context by delegating to the request's context,
// so it can be passed to anything that accepts one.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	bag    map[string]any
	values map[any]any
}

// NewContext creates a request context for the given response writer and
// request. The hosting framework's routing arguments can be attached with
// SetParam.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request's context for everything else.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value. Unlike the context bag, these
// values are keyed by arbitrary comparable keys and are not exposed as
// template data. Decorators use this to pass values to inner handlers.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the routing argument by key. Arguments attached
// via SetParam take precedence over net/http pattern values.
func (c *Context) Param(key string) string {
	if v, ok := c.params[key]; ok {
		return v
	}
	return c.r.PathValue(key)
}

// SetParam attaches a routing argument. Hosting frameworks that carry their
// own path parameters use this to hand them to the view.
func (c *Context) SetParam(key, value string) {
	if c.params == nil {
		c.params = make(map[string]string)
	}
	c.params[key] = value
}

// Set stores a value in the context bag under the given key. The bag is
// handed to the template as data when the view falls back to rendering.
func (c *Context) Set(key string, val any) {
	if c.bag == nil {
		c.bag = make(map[string]any)
	}
	c.bag[key] = val
}

// Get returns a value from the context bag.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.bag[key]
	return v, ok
}

// Bag returns the context bag as a whole. The returned map is the live bag,
// not a copy; it never contains request or dispatch bookkeeping, only keys
// stored via Set.
func (c *Context) Bag() map[string]any {
	if c.bag == nil {
		c.bag = make(map[string]any)
	}
	return c.bag
}

// IsAjax reports whether the request originates from an asynchronous
// client-side call, detected via the X-Requested-With header set by most
// JavaScript libraries or the HX-Request header set by HTMX.
func (c *Context) IsAjax() bool {
	if c.r.Header.Get(HeaderXRequestedWith) == "XMLHttpRequest" {
		return true
	}
	return c.r.Header.Get(HeaderHXRequest) == "true"
}
