package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffline/backoffice-go/internal/handler/http/response"
)

// RequirePermission gates a route group on a permission key carried in the
// token claims. The "all" permission passes every gate.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			granted, _ := claims["permissions"].([]interface{})
			for _, g := range granted {
				p, ok := g.(string)
				if !ok {
					continue
				}
				if p == "all" || p == permission {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
		})
	}
}
