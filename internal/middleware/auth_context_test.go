package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-registry/internal/ports/auth"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	return v.claims, v.err
}

func runAuthContext(t *testing.T, verifier auth.AuthVerifier, header string) (auth.Claims, error) {
	t.Helper()

	var (
		gotClaims auth.Claims
		gotErr    error
	)
	h := AuthContext(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, gotErr = ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	return gotClaims, gotErr
}

func TestAuthContext_NoHeader(t *testing.T) {
	_, err := runAuthContext(t, stubVerifier{}, "")
	if !errors.Is(err, auth.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestAuthContext_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "Token abc"} {
		_, err := runAuthContext(t, stubVerifier{}, header)
		if !errors.Is(err, auth.ErrNoCredential) {
			t.Errorf("header %q: expected ErrNoCredential, got %v", header, err)
		}
	}
}

func TestAuthContext_InvalidToken(t *testing.T) {
	v := stubVerifier{err: errors.New("bad signature")}
	_, err := runAuthContext(t, v, "Bearer some-token")
	if !errors.Is(err, auth.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestAuthContext_ValidToken(t *testing.T) {
	v := stubVerifier{claims: auth.Claims{UserID: "u1", Name: "Ana"}}
	claims, err := runAuthContext(t, v, "bearer some-token") // case-insensitive
	if err != nil {
		t.Fatalf("expected claims, got err %v", err)
	}
	if claims.UserID != "u1" || claims.Name != "Ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
