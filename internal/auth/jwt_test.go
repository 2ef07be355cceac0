package auth

import (
	"testing"
	"time"

	"galaxy-server/internal/shared/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-that-is-at-least-32-chars!!",
			TokenExpiration: time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

func TestServiceTokenRoundTrip(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateServiceToken("map-tool", "admin")
	if err != nil {
		t.Fatalf("GenerateServiceToken() error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT() error: %v", err)
	}
	if claims.ServiceName != "map-tool" || claims.Role != "admin" {
		t.Errorf("claims = %q/%q, want map-tool/admin", claims.ServiceName, claims.Role)
	}
	if claims.Subject != "service_map-tool" {
		t.Errorf("subject = %q, want service_map-tool", claims.Subject)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	setTestConfig(t)

	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("ValidateJWT accepted a malformed token")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateServiceToken("map-tool", "admin")
	if err != nil {
		t.Fatalf("GenerateServiceToken() error: %v", err)
	}

	config.GlobalConfig.Auth.JWTSecret = "another-secret-that-is-32-chars-long!!!"
	if _, err := ValidateJWT(token); err == nil {
		t.Error("ValidateJWT accepted a token signed with a different secret")
	}
}
