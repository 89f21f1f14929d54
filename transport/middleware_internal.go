package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/utils/errors"
)

// InternalMiddleware checks for the static API key sent by the expiration
// consumer. An empty key rejects every request.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
