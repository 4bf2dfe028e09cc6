// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the acting operator's user ID.
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// WithActorID returns a context with the actor's user ID embedded.
// A non-positive ID leaves the context unchanged.
func WithActorID(ctx context.Context, userID int64) context.Context {
	if userID <= 0 {
		return ctx
	}
	return context.WithValue(ctx, ActorKey{}, userID)
}

// ActorFromContext returns the actor's user ID, or nil if not set.
func ActorFromContext(ctx context.Context) *int64 {
	if v, ok := ctx.Value(ActorKey{}).(int64); ok {
		return &v
	}
	return nil
}
