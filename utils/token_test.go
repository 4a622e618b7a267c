package utils

import (
	"testing"
	"time"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "jane@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken failed: %v", err)
	}
	if sub != "user-123" {
		t.Fatalf("expected subject user-123, got %q", sub)
	}
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	if _, err := ExtractIDFromToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestExtractIDFromTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-123", "jane@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestIntrospectToken(t *testing.T) {
	token, err := GenerateToken("user-456", "owner@example.com", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := IntrospectToken(token)
	if err != nil {
		t.Fatalf("IntrospectToken failed: %v", err)
	}
	if claims.Subject != "user-456" {
		t.Fatalf("expected subject user-456, got %q", claims.Subject)
	}
	if claims.Email != "owner@example.com" {
		t.Fatalf("expected email owner@example.com, got %q", claims.Email)
	}
	if claims.ExpiresAt.Before(time.Now().Add(25 * time.Minute)) {
		t.Fatalf("expiry too soon: %s", claims.ExpiresAt)
	}
}

func TestTokenExpired(t *testing.T) {
	fresh, err := GenerateToken("u", "u@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if TokenExpired(fresh, time.Now()) {
		t.Fatal("fresh token reported expired")
	}
	if !TokenExpired(fresh, time.Now().Add(2*time.Hour)) {
		t.Fatal("lapsed token reported valid")
	}
	if !TokenExpired("garbage", time.Now()) {
		t.Fatal("undecodable token should count as expired")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("secret-token")
	b := HashToken("secret-token")
	if a != b {
		t.Fatal("expected identical hashes for identical input")
	}
	if a == HashToken("other-token") {
		t.Fatal("expected different hashes for different input")
	}
	if a == "secret-token" {
		t.Fatal("hash must not echo the token")
	}
}
