// Package auth issues and validates the service tokens that guard the
// generation endpoints. There are no user accounts; tokens identify
// operational tooling and carry a role claim.
package auth

import (
	"fmt"
	"time"

	"galaxy-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	ServiceName string `json:"service_name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateServiceToken signs a token for the named service with the given
// role. Expiration follows the configured token lifetime.
func GenerateServiceToken(serviceName, role string) (string, error) {
	cfg := config.GlobalConfig.Auth

	claims := Claims{
		ServiceName: serviceName,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("service_%s", serviceName),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	secret := config.GlobalConfig.Auth.JWTSecret

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
