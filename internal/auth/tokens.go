// Package auth implements the token service (signed bearer credentials) and
// the accounts service (registration, login and token-subject resolution).
package auth

import (
	"fmt"
	"pragency/pkg/domain"
	"pragency/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokensOptions configures access-token signing.
type TokensOptions struct {
	// Secret is the HMAC signing secret.
	Secret string
	// Algorithm is the HMAC signing method name (HS256, HS384 or HS512).
	Algorithm string
	// AccessTokenTTL is the lifetime of issued tokens.
	AccessTokenTTL time.Duration
}

// Tokens issues and validates signed bearer tokens carrying a user identifier
// and expiry. Issue is a pure function of its inputs, the secret and the clock.
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokens validates the options and returns a token service. Only the HMAC
// family of signing methods is accepted; anything else is a configuration
// error at startup.
func NewTokens(opts TokensOptions) (*Tokens, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}

	method := jwt.GetSigningMethod(opts.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", opts.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", opts.Algorithm)
	}

	return &Tokens{
		secret: []byte(opts.Secret),
		method: method,
		ttl:    opts.AccessTokenTTL,
	}, nil
}

// Issue produces a signed token embedding the user ID as subject and an
// absolute expiry of now plus the configured TTL.
func (t *Tokens) Issue(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token. A bad signature, a malformed payload,
// a different signing method or a passed expiry all fail with the same
// unauthorized kind. On success it returns the embedded user ID; callers must
// still confirm that user exists.
func (t *Tokens) Validate(tokenString string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}
	if !token.Valid {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "could not validate credentials")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "could not validate credentials")
	}

	return domain.UserID(id), nil
}
