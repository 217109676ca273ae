package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware wraps a handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain wraps h in the given middlewares, outermost first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// contextKey keeps request-scoped values from colliding with other packages.
type contextKey string

const dryRunKey contextKey = "dryRun"

// paramsMiddleware reads the query parameters shared by every job endpoint:
// verbose=true bumps logging to debug for the duration of the request, and
// dry_run=true is stashed in the context for handlers to pass to their jobs.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())

		query := r.URL.Query()
		if query.Get("verbose") == "true" {
			originalLevel := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			// Restored when the handler returns, so a slow job triggered
			// here does not leave the whole process on debug.
			defer log.SetLevel(originalLevel)
		}

		ctx := context.WithValue(r.Context(), dryRunKey, query.Get("dry_run") == "true")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isDryRunFromContext reports whether the request asked for a dry run.
func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunKey).(bool)
	return ok && dryRun
}
