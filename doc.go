// Package viewkit provides a minimal base for building HTTP request handlers
// on top of a hosting web framework. A View dispatches incoming requests to
// per-verb handler functions, wraps the dispatch in a configurable decorator
// chain, and falls back to rendering a template from the accumulated context
// bag when a handler returns no explicit response.
//
// The package deliberately owns no transport, routing, or template engine:
// it plugs into net/http (or any router that can call an http.Handler) and
// delegates template selection and rendering to a TemplateSource.
//
// # Basic Usage
//
//	profile := &viewkit.View{
//		Methods:   []string{http.MethodGet, http.MethodPost},
//		Template:  "profile.html",
//		Templates: source,
//		Handlers: map[string]viewkit.HandlerFunc{
//			http.MethodGet: func(ctx *viewkit.Context) viewkit.Response {
//				ctx.Set("user", currentUser(ctx))
//				return nil // falls back to rendering profile.html
//			},
//			http.MethodPost: func(ctx *viewkit.Context) viewkit.Response {
//				return viewkit.RedirectSeeOther("/profile")
//			},
//		},
//	}
//	mux.Handle("/profile", profile)
//
// A handler that returns a non-nil Response short-circuits rendering; a nil
// return means "render my template with the context bag as data".
package viewkit
