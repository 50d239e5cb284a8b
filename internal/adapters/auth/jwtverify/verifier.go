package jwtverify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vetcare-portal/internal/ports/auth"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoSecret     = errors.New("jwt secret not configured")
	ErrInvalidToken = errors.New("invalid token")
)

// tokenClaims es el formato de los access tokens del backend (sub = user id).
type tokenClaims struct {
	Email       string         `json:"email"`
	AppMetadata map[string]any `json:"app_metadata"`
	jwt.RegisteredClaims
}

// Verifier valida localmente tokens HS256 firmados con el secreto del proyecto.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(tc.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}

	role, _ := tc.AppMetadata["role"].(string)
	return auth.Claims{
		UserID: sub,
		Email:  strings.TrimSpace(tc.Email),
		Role:   auth.ParseRole(role),
	}, nil
}
