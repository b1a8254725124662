// Package middleware provides ready-made decorators for viewkit views:
// structured request/response logging, request ID propagation, and
// Accept-Language negotiation.
//
// Decorators are plain viewkit.Middleware values and compose through a
// view's Decorators list, outermost first:
//
//	v := &viewkit.View{
//		Decorators: []viewkit.Middleware{
//			middleware.RequestID(),
//			middleware.Logging(),
//		},
//		...
//	}
package middleware
