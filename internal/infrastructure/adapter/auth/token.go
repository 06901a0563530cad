package auth

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	"github.com/corepay/payroll-ledger/internal/domain/port/core"
)

const tokenIssuer = "payroll-ledger"

// JWTIssuer implements the TokenIssuer interface using HS256 signed tokens
type JWTIssuer struct {
	secret       []byte
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a token issuer signing with the given shared secret
func NewJWTIssuer(secret string, timeProvider core.TimeProvider) core.TokenIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		timeProvider: timeProvider,
	}
}

// Issue signs a token carrying the principal's identity claims
func (i *JWTIssuer) Issue(principal entity.Principal, ttl time.Duration) (string, error) {
	now := i.timeProvider.Now()

	token, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("email", principal.Email).
		Claim("role", principal.Role).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, i.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify validates the token signature and expiry and returns the principal
func (i *JWTIssuer) Verify(tokenString string) (entity.Principal, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, i.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAcceptableSkew(30*time.Second),
	)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("invalid token: %w", err)
	}

	email, ok := claimString(token, "email")
	if !ok {
		return entity.Principal{}, fmt.Errorf("token missing email claim")
	}
	role, ok := claimString(token, "role")
	if !ok {
		return entity.Principal{}, fmt.Errorf("token missing role claim")
	}

	return entity.Principal{Email: email, Role: role}, nil
}

func claimString(token jwt.Token, name string) (string, bool) {
	raw, ok := token.Get(name)
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}
