package ctxdata

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderCorrelationId = "X-Correlation-Id"

type correlationIdKey struct{}

func WithCorrelationId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIdKey{}, id)
}

func GetCorrelationId(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIdKey{}).(string); ok {
		return id
	}
	return ""
}

// EnsureCorrelationId returns ctx unchanged when it already carries an id,
// otherwise a child context with a fresh one.
func EnsureCorrelationId(ctx context.Context) context.Context {
	if GetCorrelationId(ctx) != "" {
		return ctx
	}
	return WithCorrelationId(ctx, uuid.NewString())
}

// SetContextFromHTTP propagates the caller's correlation id header, generating
// one when the header is absent.
func SetContextFromHTTP(ctx context.Context, req *http.Request) context.Context {
	if req != nil {
		if id := req.Header.Get(HeaderCorrelationId); id != "" {
			return WithCorrelationId(ctx, id)
		}
	}
	return EnsureCorrelationId(ctx)
}
