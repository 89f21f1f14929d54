package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/promo-admin/constant"
	utilsContext "github.com/muhammadheryan/promo-admin/utils/context"
)

const maxSessionIDLength = 64

// SessionMiddleware copies the list view session id header into the request
// context. Overlong ids are ignored so a fresh session gets created.
func SessionMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(constant.SessionIDHeader))
			if id == "" || len(id) > maxSessionIDLength {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithSessionID(r.Context(), id)))
		})
	}
}
