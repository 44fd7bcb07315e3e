package logger

import "context"

// contextKey is a private type so our keys cannot collide with other packages.
type contextKey string

const (
	// RequestIDKey stores the per-request id in the context.
	RequestIDKey = contextKey("request_id")
	// UserIDKey stores the authenticated username in the context.
	UserIDKey = contextKey("user_id")
)

// WithRequestID attaches a request id to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithUserID attaches the authenticated username to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// FromContext extracts the known context fields as a key/value slice suitable
// for the sugared zap calls.
func FromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		fields = append(fields, "request_id", requestID)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		fields = append(fields, "user_id", userID)
	}
	return fields
}
