package auth

import "context"

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity returns a copy of ctx carrying the verified token claims.
func WithIdentity(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, identityKey, c)
}

// IdentityFromContext returns the claims attached by the access gate.
func IdentityFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(identityKey).(*Claims)
	return c, ok && c != nil
}
