// Package scope carries the caller identity of an internal request through
// the context. The engine sits behind the platform gateway, which vouches for
// the tenant and user it forwards.
package scope

import "context"

// Payload identifies the tenant and user a request acts for.
type Payload struct {
	TenantID string
	UserID   string
	Role     string
}

type ctxKey struct{}

// SetPayloadToContext returns a context carrying the payload.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, ctxKey{}, payload)
}

// GetPayloadFromContext extracts the payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(ctxKey{}).(Payload)
	return payload, ok
}
