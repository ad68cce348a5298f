package middleware

import (
	"net/http"
	"strings"

	"github.com/isipark/siteapi/pkg/auth"
	"github.com/isipark/siteapi/pkg/response"
)

// Admin rejects requests without a valid admin bearer token. Public reads
// and the contact form never pass through this; everything that mutates
// content does.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
