package jwtauth

import (
	"context"
	"testing"
	"time"

	"pet-registry/internal/ports/auth"
)

func TestIssueAndVerify(t *testing.T) {
	secret := "test-secret-key"

	issuer, err := NewIssuer(secret)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	verifier, err := NewVerifier(secret)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	token, err := issuer.Issue(context.Background(), auth.Claims{
		UserID: "personnel-1",
		Name:   "Ana Reyes",
		Email:  "ana@clinic.test",
		Role:   "personnel",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "personnel-1" {
		t.Errorf("expected user id personnel-1, got %q", claims.UserID)
	}
	if claims.Name != "Ana Reyes" {
		t.Errorf("expected name 'Ana Reyes', got %q", claims.Name)
	}
	if claims.Role != "personnel" {
		t.Errorf("expected role 'personnel', got %q", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("secret1")
	verifier, _ := NewVerifier("secret2")

	token, _ := issuer.Issue(context.Background(), auth.Claims{UserID: "u1"})
	if _, err := verifier.Verify(context.Background(), token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	verifier, _ := NewVerifier("secret")
	if _, err := verifier.Verify(context.Background(), "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestVerify_Empty(t *testing.T) {
	verifier, _ := NewVerifier("secret")
	if _, err := verifier.Verify(context.Background(), ""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestVerify_Expired(t *testing.T) {
	secret := "secret"
	issuer, _ := NewIssuer(secret)
	issuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, _ := issuer.Issue(context.Background(), auth.Claims{UserID: "u1"})

	verifier, _ := NewVerifier(secret)
	if _, err := verifier.Verify(context.Background(), token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestNewVerifier_EmptySecret(t *testing.T) {
	if _, err := NewVerifier("  "); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewIssuer(""); err == nil {
		t.Error("expected error for empty secret")
	}
}
