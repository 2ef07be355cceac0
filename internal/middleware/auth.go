package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"galaxy-server/internal/auth"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type contextKey string

const ServiceContextKey contextKey = "service"

// JWTMiddleware authenticates requests with a bearer service token. A cookie
// named auth_token is accepted as a fallback for browser tooling.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "jwt",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		logger.Debug("Processing JWT authentication")

		tokenString := bearerToken(r)
		if tokenString == "" {
			if cookie, err := r.Cookie("auth_token"); err == nil {
				tokenString = cookie.Value
			}
		}
		if tokenString == "" {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		claims, err := auth.ValidateJWT(tokenString)
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), ServiceContextKey, claims)
		logger.Debug("JWT authentication successful",
			"service_name", claims.ServiceName,
			"role", claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// GetServiceFromContext returns the authenticated service claims, or nil.
func GetServiceFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(ServiceContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
