// Package requestid carries the per-request identifier through context.Context
// so that log lines written below the HTTP layer can be correlated.
package requestid

import "context"

type contextKey struct{}

// Header is the HTTP header that carries the request ID
const Header = "X-Request-ID"

// With returns a copy of ctx carrying id
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// From returns the request ID stored in ctx, or "" when there is none
func From(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
