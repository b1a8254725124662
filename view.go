package viewkit

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// defaultMethods is the allow-list used when a view does not configure one.
var defaultMethods = []string{http.MethodGet, http.MethodPost}

// View is a per-route handler configuration. A View itself is immutable and
// shared across requests; all per-request state lives on the Context that
// Dispatch receives.
//
// The zero value is not useful: at minimum Handlers and either Template or
// Templates must be set for the view to produce a response.
type View struct {
	// Name identifies the view in error messages. Defaults to the primary
	// template name, or "<unnamed view>" if neither is set.
	Name string

	// Methods is the allowed HTTP method set. Defaults to GET and POST.
	// A method is only actually allowed if Handlers carries an entry for it.
	Methods []string

	// Decorators wrap the dispatch in declared order, outermost first. The
	// method guard wraps the whole chain, so decorators only run for
	// allowed methods.
	Decorators []Middleware

	// Template is the primary template name rendered when a handler
	// returns nil.
	Template string

	// AjaxTemplate, when set, is preferred over Template for requests
	// flagged as asynchronous (see Context.IsAjax).
	AjaxTemplate string

	// Handlers maps canonical HTTP method names (http.MethodGet and
	// friends) to their handler functions.
	Handlers map[string]HandlerFunc

	// SelectHandler overrides method resolution. When nil, the handler is
	// looked up in Handlers by the request method.
	SelectHandler func(ctx *Context) (HandlerFunc, error)

	// TemplateNames overrides template resolution. When nil, the default
	// AjaxTemplate/Template policy applies.
	TemplateNames func(ctx *Context) []string

	// ContextData overrides the data handed to the template. When nil, the
	// context bag is used as-is.
	ContextData func(ctx *Context) map[string]any

	// Templates selects and renders templates when a handler defers.
	Templates TemplateSource

	// OnError handles dispatch and rendering errors. Defaults to plain
	// http.Error responses mapped from the error kind.
	OnError ErrorHandler
}

// String returns the view's identity for error messages.
func (v *View) String() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Template != "" {
		return fmt.Sprintf("View(%s)", v.Template)
	}
	return "<unnamed view>"
}

// Dispatch runs the view for a single request: it composes the configured
// decorators around the response resolver, wraps the whole chain in the
// method guard, and invokes it. Errors are carried inside the returned
// Response and surface when it is rendered.
func (v *View) Dispatch(ctx *Context) Response {
	if ctx == nil {
		return Error(&ViewError{View: v.String(), Err: ErrNilContext})
	}
	endpoint := chain(v.Decorators, v.respond)
	return v.guard(endpoint)(ctx)
}

// ServeHTTP adapts the view to the hosting framework. It creates the one
// Context for the request, dispatches, renders the resulting Response, and
// routes any error to the configured error handler.
func (v *View) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &responseWriter{ResponseWriter: w}
	ctx := NewContext(ww, r)

	var err error
	if resp := v.Dispatch(ctx); resp != nil {
		err = resp(ww, r)
	} else {
		err = &ViewError{View: v.String(), Err: ErrNilResponse}
	}
	if err == nil {
		return
	}

	if errors.Is(err, ErrMethodNotAllowed) {
		if allowed := v.allowedMethods(); len(allowed) > 0 {
			ww.Header().Set("Allow", strings.Join(allowed, ", "))
		}
	}

	onError := v.OnError
	if onError == nil {
		onError = defaultErrorHandler
	}
	onError(ctx, err)
}

// guard restricts dispatch to the subset of configured methods that have a
// matching handler. Disallowed methods short-circuit with
// ErrMethodNotAllowed before any decorator runs.
func (v *View) guard(next HandlerFunc) HandlerFunc {
	allowed := v.allowedMethods()
	return func(ctx *Context) Response {
		if !slices.Contains(allowed, canonicalMethod(ctx.Request().Method)) {
			return Error(&ViewError{View: v.String(), Err: ErrMethodNotAllowed})
		}
		return next(ctx)
	}
}

// respond resolves the handler for the request method, invokes it, and falls
// back to template rendering when the handler returns nil.
func (v *View) respond(ctx *Context) Response {
	h, err := v.handler(ctx)
	if err != nil {
		return Error(err)
	}
	if resp := h(ctx); resp != nil {
		return resp
	}
	return v.render(ctx)
}

// handler resolves the request method to a handler function. SelectHandler
// takes over when configured; otherwise the handler is looked up in Handlers
// by canonical method name. A nil resolution is a configuration error.
func (v *View) handler(ctx *Context) (HandlerFunc, error) {
	method := canonicalMethod(ctx.Request().Method)

	if v.SelectHandler != nil {
		h, err := v.SelectHandler(ctx)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, &ViewError{View: v.String(), Err: fmt.Errorf("%w: %s", ErrNoHandler, method)}
		}
		return h, nil
	}

	h, ok := v.Handlers[method]
	if !ok || h == nil {
		// The guard's allow-list already excludes verbs without an entry,
		// so in the default path this only catches a Handlers map mutated
		// after dispatch started. Kept explicit rather than panicking.
		return nil, &ViewError{View: v.String(), Err: fmt.Errorf("%w: %s", ErrNoHandler, method)}
	}
	return h, nil
}

// render resolves the candidate template names and returns a Response that
// renders the first existing one with the context bag as data. The output is
// buffered so a failed render never produces a partial body.
func (v *View) render(ctx *Context) Response {
	names := v.templateNames(ctx)
	if len(names) == 0 {
		return Error(&ViewError{View: v.String(), Err: ErrNoTemplate})
	}
	if v.Templates == nil {
		return Error(&ViewError{View: v.String(), Err: ErrNoTemplateSource})
	}
	data := v.contextData(ctx)

	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		if err := v.Templates.Render(&buf, names, data); err != nil {
			return &ViewError{View: v.String(), Err: err}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(buf.Bytes())
		return err
	}
}

// templateNames returns the ordered candidate template names for the
// request: the ajax template alone when the request is asynchronous and one
// is configured, the primary template alone otherwise, or nothing.
func (v *View) templateNames(ctx *Context) []string {
	if v.TemplateNames != nil {
		return v.TemplateNames(ctx)
	}
	if ctx.IsAjax() && v.AjaxTemplate != "" {
		return []string{v.AjaxTemplate}
	}
	if v.Template != "" {
		return []string{v.Template}
	}
	return nil
}

// contextData returns the template data for the request.
func (v *View) contextData(ctx *Context) map[string]any {
	if v.ContextData != nil {
		return v.ContextData(ctx)
	}
	return ctx.Bag()
}

// allowedMethods returns the subset of configured methods that have a
// handler, preserving the configured order.
func (v *View) allowedMethods() []string {
	methods := v.Methods
	if len(methods) == 0 {
		methods = defaultMethods
	}
	allowed := make([]string, 0, len(methods))
	for _, m := range methods {
		m = canonicalMethod(m)
		if v.SelectHandler != nil || v.Handlers[m] != nil {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// canonicalMethod normalizes an HTTP method name to its canonical
// upper-case form.
func canonicalMethod(method string) string {
	return strings.ToUpper(method)
}
