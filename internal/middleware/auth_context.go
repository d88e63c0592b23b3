package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-registry/internal/ports/auth"
)

type ctxKey string

const authKey ctxKey = "auth"

// authState guarda el resultado de la autenticación del request:
// claims válidas, o el motivo del rechazo. El middleware no corta;
// cada handler decide si exige auth y con qué status responde.
type authState struct {
	claims auth.Claims
	err    error
}

// AuthContext extrae el Bearer token y lo verifica.
// - Sin header Authorization => auth.ErrNoCredential.
// - Token presente pero inválido => auth.ErrInvalidCredential.
// - Token válido => claims en el contexto.
// No se toca el store antes de esta decisión.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := authState{err: auth.ErrNoCredential}

			if token := bearerToken(r.Header.Get("Authorization")); token != "" {
				if verifier == nil {
					// Sin verifier configurado nada se puede verificar.
					state = authState{err: auth.ErrInvalidCredential}
					ctx := context.WithValue(r.Context(), authKey, state)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				claims, err := verifier.Verify(r.Context(), token)
				if err != nil {
					state = authState{err: auth.ErrInvalidCredential}
				} else {
					state = authState{claims: claims}
				}
			}

			ctx := context.WithValue(r.Context(), authKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom devuelve las claims del request, o el error de auth
// (auth.ErrNoCredential / auth.ErrInvalidCredential).
func ClaimsFrom(ctx context.Context) (auth.Claims, error) {
	v := ctx.Value(authKey)
	if v == nil {
		return auth.Claims{}, auth.ErrNoCredential
	}
	state, ok := v.(authState)
	if !ok {
		return auth.Claims{}, auth.ErrNoCredential
	}
	if state.err != nil {
		return auth.Claims{}, state.err
	}
	return state.claims, nil
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
