package policy

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the identity a request or internal operation acts as.
type Principal struct {
	UserID uuid.UUID
	// Service marks server-internal operations that bypass row ownership checks.
	Service bool
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// AsService returns a context that keeps the current user id but runs with the service role.
func AsService(ctx context.Context) context.Context {
	p, _ := FromContext(ctx)
	p.Service = true
	return WithPrincipal(ctx, p)
}
