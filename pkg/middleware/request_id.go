package middleware

import (
	"net/http"

	"seat-reservation/pkg/utils"

	"github.com/google/uuid"
)

// RequestID ensures every request has an ID for tracing and logs. An
// incoming X-Request-ID is trusted and passed through; otherwise a fresh
// UUID is generated. The ID is echoed on the response and stored in the
// request context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", rid)

			ctx := utils.SetRequestIDContext(r.Context(), rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
