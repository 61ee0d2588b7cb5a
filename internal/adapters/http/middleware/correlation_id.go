package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/httpclient"
)

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for CorrelationIDFromContext and for
// the X-Correlation-ID header on outbound host calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation id, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID adopts the caller's X-Correlation-ID, falling back to the
// request id, so it must run after RequestID. The id is echoed in the
// response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderCorrelationID)
			if !validID(id) {
				id = RequestIDFromContext(r.Context())
			}
			if id != "" {
				w.Header().Set(httpclient.HeaderCorrelationID, id)
			}
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
