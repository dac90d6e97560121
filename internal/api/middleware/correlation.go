package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// OCPI 2.2.1 tracing headers. X-Request-ID is unique per hop, X-Correlation-ID
// is kept across the whole chain of requests.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	correlationIDKey contextKey = "correlation_id"
)

// Tracing reads X-Request-ID and X-Correlation-ID from the incoming request,
// generating a UUID for whichever is absent. A missing correlation id
// defaults to the request id. Both are stored on the context and echoed in
// the response headers.
func Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		corrID := r.Header.Get(HeaderCorrelationID)
		if corrID == "" {
			corrID = reqID
		}

		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		ctx = context.WithValue(ctx, correlationIDKey, corrID)
		w.Header().Set(HeaderRequestID, reqID)
		w.Header().Set(HeaderCorrelationID, corrID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns "" if Tracing was not applied.
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// GetCorrelationID returns "" if Tracing was not applied.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(correlationIDKey).(string)
	return v
}
