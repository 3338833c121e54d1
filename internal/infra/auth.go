package infra

import (
	"context"
	"net/http"

	"github.com/fleencorp/stream-service/internal/config"
)

const userUUIDHeader = "X-User-Uuid"

// AuthInterceptorHTTP lifts the caller's uuid, injected by the API gateway
// after authentication, into the request context.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(userUUIDHeader)
		if userUUID == "" {
			http.Error(w, "missing user uuid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
