package purchase

import (
	"context"

	"github.com/google/uuid"
)

type idempotencyKeyCtxKey struct{}

// ContextWithIdempotencyKey makes the payment and the seat reservation of a
// purchase made with ctx carry key.
func ContextWithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtxKey{}, key)
}

// IdempotencyKeyFromContext returns the key set on ctx, or a new one if there is none.
func IdempotencyKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(idempotencyKeyCtxKey{}).(string); ok && key != "" {
		return key
	}
	return uuid.NewString()
}
