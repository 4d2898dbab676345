package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates the client's request ID, generating one when the
// header is absent. The ID is stored in context and echoed in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
