package v1handler

import (
	"crypto/rsa"
	"fmt"
	"recruit/internal/config"
	"recruit/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuerOptions configure token issuance at sign-in.
type TokenIssuerOptions struct {
	// PrivateKey is the PEM-encoded RSA private key tokens are signed with.
	PrivateKey string
	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration
}

// NewTokenIssuerOptions constructs a TokenIssuerOptions value from the
// provided application configuration.
func NewTokenIssuerOptions(cfg *config.Config) *TokenIssuerOptions {
	return &TokenIssuerOptions{
		PrivateKey: cfg.JWT.PrivateKey,
		TokenTTL:   cfg.JWT.TokenTTL,
	}
}

// TokenIssuer mints RS256 JWTs whose subject is the account ID. It is the
// counterpart of SecHandler.
type TokenIssuer struct {
	privateKey *rsa.PrivateKey
	tokenTTL   time.Duration
}

func NewTokenIssuer(opts *TokenIssuerOptions) (*TokenIssuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &TokenIssuer{privateKey: key, tokenTTL: opts.TokenTTL}, nil
}

// Issue signs a token for the given account and returns it together with its
// expiry time.
func (t *TokenIssuer) Issue(id domain.AccountID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}
