// Package requestctx carries the per-request id through a context so logs
// and error envelopes can correlate one request end to end.
package requestctx

import "context"

type ctxKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// GetRequestID returns the request id, or "" outside a tagged request.
func GetRequestID(ctx context.Context) string {
	value, _ := ctx.Value(ctxKey{}).(string)
	return value
}
