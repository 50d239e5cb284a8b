package middleware

import (
	"context"
	"net/http"
	"strings"

	"vetcare-portal/internal/ports/auth"
)

// Headers del modo dev (sin verifier).
const (
	DebugUserIDHeader   = "X-Debug-User-ID"
	DebugUserRoleHeader = "X-Debug-User-Role"
)

type claimsKey struct{}

// AuthContext resuelve las claims del request y las deja en el contexto.
// Nunca corta el request: cada handler decide si exige usuario (401) o rol (403).
//
// Con verifier, solo cuenta el Bearer token y los headers de debug se ignoran.
// Sin verifier (dev), se toman X-Debug-User-ID y X-Debug-User-Role (default client).
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				claims auth.Claims
				ok     bool
			)
			if verifier == nil {
				claims, ok = debugClaims(r)
			} else {
				claims, ok = verifiedClaims(r, verifier)
			}
			if ok {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func debugClaims(r *http.Request) (auth.Claims, bool) {
	uid := strings.TrimSpace(r.Header.Get(DebugUserIDHeader))
	if uid == "" {
		return auth.Claims{}, false
	}
	role := strings.ToLower(strings.TrimSpace(r.Header.Get(DebugUserRoleHeader)))
	return auth.Claims{UserID: uid, Role: auth.ParseRole(role)}, true
}

func verifiedClaims(r *http.Request, verifier auth.AuthVerifier) (auth.Claims, bool) {
	token, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return auth.Claims{}, false
	}
	claims, err := verifier.Verify(r.Context(), token)
	if err != nil || strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, false
	}
	return claims, true
}

// WithClaims deja claims en ctx (también útil en tests de handlers).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return c, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
