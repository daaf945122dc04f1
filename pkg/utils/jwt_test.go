package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(42, "customer", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "42" || claims.Role != "customer" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseJWT_Rejects(t *testing.T) {
	InitJWT("test-secret")
	expired, err := GenerateJWT(1, "admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("other-secret")
	foreign, err := GenerateJWT(1, "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJWT(tt.token); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
