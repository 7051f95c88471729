package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/controllers"
	"github.com/lifedrop/backend/utils"
	"github.com/sirupsen/logrus"
)

// Auth validates the Bearer token and places the caller's user id in the
// request context under controllers.UserIDKey.
func Auth(jwtKey []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenHeader := r.Header.Get("Authorization")
			if tokenHeader == "" {
				logrus.Warnf("Missing Authorization header from request %s %s", r.Method, r.URL)
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			tokenParts := strings.Split(tokenHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				logrus.Warnf("Invalid Authorization header format from request %s %s", r.Method, r.URL)
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateJWT(tokenParts[1], jwtKey)
			if err != nil {
				logrus.Warnf("Invalid or expired token: %v", err)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
