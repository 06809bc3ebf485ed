package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one. Order is outermost first:
// Chain(mw1, mw2)(h) == mw1(mw2(h)), so mw1 sees the request before mw2.
// The app relies on this for identity: Auth must run after Recovery and
// Logger but before any handler resolves the tenant.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
