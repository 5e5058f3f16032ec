package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker decides whether a bearer token may mutate the catalog.
// Every implementation rejects all tokens when it has no secret configured.
type CredentialChecker interface {
	Check(ctx context.Context, token string) error
}

// ============================================================================
// Static shared secret
// ============================================================================

type StaticTokenChecker struct {
	secret []byte
}

func NewStaticTokenChecker(secret string) *StaticTokenChecker {
	return &StaticTokenChecker{secret: []byte(secret)}
}

func (c *StaticTokenChecker) Check(ctx context.Context, token string) error {
	if len(c.secret) == 0 || token == "" {
		return ErrUnauthorized()
	}
	if subtle.ConstantTimeCompare([]byte(token), c.secret) != 1 {
		return ErrUnauthorized()
	}
	return nil
}

// ============================================================================
// Bcrypt hashed secret
// ============================================================================

// BcryptTokenChecker compares the token with a bcrypt hash of the admin secret
type BcryptTokenChecker struct {
	hash []byte
}

func NewBcryptTokenChecker(hash string) *BcryptTokenChecker {
	return &BcryptTokenChecker{hash: []byte(strings.TrimSpace(hash))}
}

// HashToken produces the value expected by NewBcryptTokenChecker
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash token: %w", err)
	}
	return string(hash), nil
}

func (c *BcryptTokenChecker) Check(ctx context.Context, token string) error {
	if len(c.hash) == 0 || token == "" {
		return ErrUnauthorized()
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(token)); err != nil {
		return ErrRegistry.NewWithCause(CodeUnauthorized, err)
	}
	return nil
}

// ============================================================================
// Signed admin tokens
// ============================================================================

// AdminClaims are the claims of an admin JWT
type AdminClaims struct {
	Scope []string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTChecker accepts HS256 tokens carrying a jobs write scope
type JWTChecker struct {
	secret []byte
	issuer string
}

func NewJWTChecker(secret, issuer string) *JWTChecker {
	return &JWTChecker{secret: []byte(secret), issuer: issuer}
}

func (c *JWTChecker) Check(ctx context.Context, token string) error {
	if len(c.secret) == 0 || token == "" {
		return ErrUnauthorized()
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return ErrRegistry.NewWithCause(CodeUnauthorized, err)
	}
	if !parsed.Valid {
		return ErrUnauthorized()
	}
	if !HasAnyScope(claims.Scope, ScopeJobsWrite, ScopeJobsAll, ScopeAll) {
		return ErrUnauthorized().WithDetail("required_scope", ScopeJobsWrite)
	}
	return nil
}

// IssueAdminToken signs a token accepted by a JWTChecker with the same secret
func IssueAdminToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := AdminClaims{
		Scope: []string{ScopeJobsWrite},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}
