package utils

import "context"

type contextKey string

const RequestIDKey contextKey = "request_id"

// SetRequestIDContext stores the request ID for downstream handlers and logs.
func SetRequestIDContext(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, RequestIDKey, rid)
}

// GetRequestIDFromContext returns the request ID when one was set.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	ridVal := ctx.Value(RequestIDKey)
	if ridVal == nil {
		return "", false
	}

	rid, ok := ridVal.(string)
	return rid, ok
}
