package auth

import (
	"context"
	"errors"
)

var (
	// ErrNoCredential: el request no trajo Authorization Bearer.
	ErrNoCredential = errors.New("access denied, no credential")
	// ErrInvalidCredential: el token vino pero no se pudo verificar
	// (malformado, firma incorrecta, expirado).
	ErrInvalidCredential = errors.New("invalid credential")
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para las claims dadas.
// Lo usan los logins de personal y de dueños.
type TokenIssuer interface {
	Issue(ctx context.Context, c Claims) (string, error)
}
