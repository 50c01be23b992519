package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/pkg/ctxutil"
)

// RequestID tags every request with an id, honoring an X-Request-Id sent
// by the client and minting one otherwise. The id is stored in the context
// and echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
