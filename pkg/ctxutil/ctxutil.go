package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const queryIDKey ctxKey = "query_id"

// WithQueryID stores the query ID in the context.
func WithQueryID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, queryIDKey, id)
}

// NewQueryContext stores a freshly generated query ID in the context and
// returns it alongside.
func NewQueryContext(ctx context.Context) (context.Context, uuid.UUID) {
	id := uuid.New()
	return WithQueryID(ctx, id), id
}

// QueryIDFromCtx extracts the query ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func QueryIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(queryIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
